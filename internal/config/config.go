// Package config handles configuration for the fleetsync client, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the fleetsync client.
//
// Fields:
//   - DatabaseDSN: path of the local SQLite database.
//   - AssetDir: directory holding bundled placeholder images (asset_<id>.jpg).
//   - AWSRegion / AWSAccessKeyID / AWSSecretAccessKey / AWSSessionToken:
//     remote store credentials. Empty credentials fall back to the standard
//     AWS environment/profile chain.
//   - AWSBaseEndpoint: optional endpoint override (localstack/minio).
//   - UsersTable / VehiclesTable: remote table names.
//   - ImageBucket: object-store bucket for vehicle images.
//   - ProbeEndpoint / ProbeTimeout: active connectivity-probe settings.
type Config struct {
	DatabaseDSN        string
	AssetDir           string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSSessionToken    string
	AWSBaseEndpoint    string
	UsersTable         string
	VehiclesTable      string
	ImageBucket        string
	ProbeEndpoint      string
	ProbeTimeout       time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "fleetsync.db"
	c.AssetDir = "assets"
	c.AWSRegion = "us-east-1"
	c.UsersTable = "Users"
	c.VehiclesTable = "Vehicles"
	c.ImageBucket = "fleet-vehicles"
	c.ProbeEndpoint = "http://clients3.google.com/generate_204"
	c.ProbeTimeout = 1500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
