package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gamestore/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8001")
//	-d string   PostgreSQL DSN
//	-s string   token HMAC secret key
//	-t int      user token validity, minutes
//	-m int      admin session validity, minutes
//	-w string   initial admin password
//	-n string   WhatsApp number receiving orders
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Duration flags are accepted as integers in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-m", "-w", "-n", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	userTokenValidity := fs.Int("t", int(config.UserTokenValidityDuration.Minutes()), "user_token_validity_duration (in minutes)")
	adminTokenValidity := fs.Int("m", int(config.AdminTokenValidityDuration.Minutes()), "admin_token_validity_duration (in minutes)")

	fs.StringVar(&config.AdminPassword, "w", config.AdminPassword, "initial admin password")
	fs.StringVar(&config.OrderWhatsAppNumber, "n", config.OrderWhatsAppNumber, "WhatsApp number receiving orders")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.UserTokenValidityDuration = time.Duration(*userTokenValidity) * time.Minute
	config.AdminTokenValidityDuration = time.Duration(*adminTokenValidity) * time.Minute
}
