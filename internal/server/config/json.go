package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gamestore/internal/flagx"
	"github.com/dmitrijs2005/gamestore/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration, so both "720h" and integer nanoseconds are accepted.
// Keys absent from the file leave the corresponding Config field untouched.
type JsonConfig struct {
	EndpointAddrHTTP           string         `json:"endpoint_addr_http"`
	DatabaseDSN                string         `json:"database_dsn"`
	SecretKey                  string         `json:"secret_key"`
	UserTokenValidityDuration  timex.Duration `json:"user_token_validity_duration"`
	AdminTokenValidityDuration timex.Duration `json:"admin_token_validity_duration"`
	AdminPassword              string         `json:"admin_password"`
	OrderWhatsAppNumber        string         `json:"order_whatsapp_number"`
	S3RootUser                 string         `json:"s3_root_user"`
	S3RootPassword             string         `json:"s3_root_password"`
	S3Bucket                   string         `json:"s3_bucket"`
	S3Region                   string         `json:"s3_region"`
	S3BaseEndpoint             string         `json:"s3_base_endpoint"`
}

// parseJson overlays values from the file named by -c/-config onto config.
// Without the flag nothing is loaded. An unreadable file or invalid JSON
// panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.AdminPassword, c.AdminPassword)
	setString(&config.OrderWhatsAppNumber, c.OrderWhatsAppNumber)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	if c.UserTokenValidityDuration.Duration > 0 {
		config.UserTokenValidityDuration = c.UserTokenValidityDuration.Duration
	}
	if c.AdminTokenValidityDuration.Duration > 0 {
		config.AdminTokenValidityDuration = c.AdminTokenValidityDuration.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
