package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/flagx"
)

var serverFlags = []string{"-a", "-g", "-e", "-s", "-t", "-w", "-l", "-f", "-d", "-u", "-p", "-b", "-o", "-r", "-n"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-g string   gRPC bind address (e.g., ":50051")
//	-e string   environment: development | production
//	-s string   JWT HMAC secret key (prefer JWT_SECRET)
//	-t int      token validity, minutes
//	-w int      bcrypt cost
//	-l string   catalog source: embedded | file | postgres | s3
//	-f string   catalog file (JSON or YAML)
//	-d string   PostgreSQL DSN
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket
//	-o string   S3 object key of the catalog
//	-r string   S3 region
//	-n string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// args are filtered through flagx.FilterArgs first, so -c/-config and flags of
// other components do not cause parse errors.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.Environment, "e", config.Environment, "environment")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")

	fs.IntVar(&config.BcryptCost, "w", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.CatalogSource, "l", config.CatalogSource, "catalog source")
	fs.StringVar(&config.CatalogFile, "f", config.CatalogFile, "catalog file")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Key, "o", config.S3Key, "S3 object key")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "n", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(flagx.FilterArgs(args, serverFlags)); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
		}
	})
	return nil
}
