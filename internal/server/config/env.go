package config

import "os"

// envBindings maps environment variable names onto the Config fields they
// override. Unset or empty variables leave the field untouched.
func envBindings(c *Config) map[string]*string {
	return map[string]*string{
		"HTTP_ADDR":             &c.EndpointAddrHTTP,
		"DATABASE_DSN":          &c.DatabaseDSN,
		"JWT_SECRET_KEY":        &c.SecretKey,
		"ADMIN_PASSWORD":        &c.AdminPassword,
		"ORDER_WHATSAPP_NUMBER": &c.OrderWhatsAppNumber,
	}
}

func parseEnv(config *Config) {
	for name, field := range envBindings(config) {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*field = v
		}
	}
}
