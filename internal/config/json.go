package config

import (
	"encoding/json"
	"os"

	"fleetsync/internal/flagx"
	"fleetsync/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the probe timeout either as a string
// like "1.5s" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	DatabaseDSN        string         `json:"database_dsn"`
	AssetDir           string         `json:"asset_dir"`
	AWSRegion          string         `json:"aws_region"`
	AWSAccessKeyID     string         `json:"aws_access_key_id"`
	AWSSecretAccessKey string         `json:"aws_secret_access_key"`
	AWSSessionToken    string         `json:"aws_session_token"`
	AWSBaseEndpoint    string         `json:"aws_base_endpoint"`
	UsersTable         string         `json:"users_table"`
	VehiclesTable      string         `json:"vehicles_table"`
	ImageBucket        string         `json:"image_bucket"`
	ProbeEndpoint      string         `json:"probe_endpoint"`
	ProbeTimeout       timex.Duration `json:"probe_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c/-config flags. Empty JSON fields leave the current value in place, so
// the file only needs to list overrides. Read and unmarshal errors panic
// (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.AssetDir != "" {
		cfg.AssetDir = jc.AssetDir
	}
	if jc.AWSRegion != "" {
		cfg.AWSRegion = jc.AWSRegion
	}
	if jc.AWSAccessKeyID != "" {
		cfg.AWSAccessKeyID = jc.AWSAccessKeyID
	}
	if jc.AWSSecretAccessKey != "" {
		cfg.AWSSecretAccessKey = jc.AWSSecretAccessKey
	}
	if jc.AWSSessionToken != "" {
		cfg.AWSSessionToken = jc.AWSSessionToken
	}
	if jc.AWSBaseEndpoint != "" {
		cfg.AWSBaseEndpoint = jc.AWSBaseEndpoint
	}
	if jc.UsersTable != "" {
		cfg.UsersTable = jc.UsersTable
	}
	if jc.VehiclesTable != "" {
		cfg.VehiclesTable = jc.VehiclesTable
	}
	if jc.ImageBucket != "" {
		cfg.ImageBucket = jc.ImageBucket
	}
	if jc.ProbeEndpoint != "" {
		cfg.ProbeEndpoint = jc.ProbeEndpoint
	}
	if jc.ProbeTimeout.Duration != 0 {
		cfg.ProbeTimeout = jc.ProbeTimeout.Duration
	}
}
