package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T) {
	t.Helper()
	orig := os.Args
	os.Args = []string{"propledger"}
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "ledgers", cfg.LocalDir)
	require.Equal(t, "", cfg.RemoteDriver)
	require.False(t, cfg.RemoteConfigured(), "no remote by default")
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("PROPLEDGER_LOCAL_DIR", "/var/lib/propledger")
	t.Setenv("PROPLEDGER_REMOTE_DRIVER", DriverPostgres)
	t.Setenv("PROPLEDGER_DATABASE_DSN", "postgres://u:p@localhost:5432/ledgers")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "/var/lib/propledger", cfg.LocalDir)
	require.Equal(t, DriverPostgres, cfg.RemoteDriver)
	require.True(t, cfg.RemoteConfigured())
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"local_dir": "from-json",
		"remote_driver": "s3",
		"s3_access_key": "ak",
		"s3_secret_key": "sk",
		"s3_bucket": "ledgers"
	}`), 0o600))

	orig := os.Args
	os.Args = []string{"propledger", "-c", path}
	t.Cleanup(func() { os.Args = orig })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "from-json", cfg.LocalDir)
	require.Equal(t, DriverS3, cfg.RemoteDriver)
	require.True(t, cfg.RemoteConfigured())
}

func TestLoadConfig_FlagsWinOverEnv(t *testing.T) {
	t.Setenv("PROPLEDGER_LOCAL_DIR", "from-env")

	orig := os.Args
	os.Args = []string{"propledger", "-d", "from-flag"}
	t.Cleanup(func() { os.Args = orig })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "from-flag", cfg.LocalDir)
}

func TestRemoteConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"no driver", Config{}, false},
		{"postgres without dsn", Config{RemoteDriver: DriverPostgres}, false},
		{"postgres with dsn", Config{RemoteDriver: DriverPostgres, DatabaseDSN: "postgres://x"}, true},
		{"s3 missing credential", Config{RemoteDriver: DriverS3, S3AccessKey: "ak", S3Bucket: "b"}, false},
		{"s3 complete", Config{RemoteDriver: DriverS3, S3AccessKey: "ak", S3SecretKey: "sk", S3Bucket: "b"}, true},
		{"unknown driver", Config{RemoteDriver: "ftp"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.cfg.RemoteConfigured())
		})
	}
}
