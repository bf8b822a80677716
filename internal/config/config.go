// Package config handles configuration for propledger, including
// defaults, JSON overlay, environment variables and command-line
// flags. Later sources take precedence over earlier ones.
package config

// Config holds the runtime settings.
//
// Remote persistence is optional: when RemoteDriver is empty or the
// driver's endpoint/credential values are missing, the application
// runs in local-only mode, which is a valid configuration and not an
// error.
type Config struct {
	// LocalDir is the directory for per-user ledger files,
	// created on first use.
	LocalDir string `koanf:"PROPLEDGER_LOCAL_DIR" json:"local_dir"`

	// RemoteDriver selects the remote backend: "postgres", "s3" or ""
	// for local-only operation.
	RemoteDriver string `koanf:"PROPLEDGER_REMOTE_DRIVER" json:"remote_driver"`

	// DatabaseDSN is the PostgreSQL DSN (pgx) for the postgres driver.
	DatabaseDSN string `koanf:"PROPLEDGER_DATABASE_DSN" json:"database_dsn"`

	// Object-store settings for the s3 driver. BaseEndpoint is for
	// S3-compatible stores such as MinIO; leave empty for AWS.
	S3AccessKey    string `koanf:"PROPLEDGER_S3_ACCESS_KEY" json:"s3_access_key"`
	S3SecretKey    string `koanf:"PROPLEDGER_S3_SECRET_KEY" json:"s3_secret_key"`
	S3Bucket       string `koanf:"PROPLEDGER_S3_BUCKET" json:"s3_bucket"`
	S3Region       string `koanf:"PROPLEDGER_S3_REGION" json:"s3_region"`
	S3BaseEndpoint string `koanf:"PROPLEDGER_S3_BASE_ENDPOINT" json:"s3_base_endpoint"`

	// LogJSON switches log output from text to JSON.
	LogJSON bool `koanf:"PROPLEDGER_LOG_JSON" json:"log_json"`
}

// Driver names accepted in RemoteDriver.
const (
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

// LoadDefaults populates c with local-only defaults.
func (c *Config) LoadDefaults() {
	c.LocalDir = "ledgers"
	c.S3Region = "us-east-1"
	c.S3Bucket = "propledger"
}

// RemoteConfigured reports whether the selected remote driver has the
// endpoint and credential values it needs to be attempted at all.
func (c *Config) RemoteConfigured() bool {
	switch c.RemoteDriver {
	case DriverPostgres:
		return c.DatabaseDSN != ""
	case DriverS3:
		return c.S3AccessKey != "" && c.S3SecretKey != "" && c.S3Bucket != ""
	default:
		return false
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays
// values from JSON (if present), environment variables and
// command-line flags, in that order.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
