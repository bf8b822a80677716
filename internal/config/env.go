package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// parseEnv overlays Config with PROPLEDGER_* environment variables.
// The koanf struct tags carry the full variable names.
func parseEnv(cfg *Config) error {
	k := koanf.New(".")
	if err := k.Load(env.Provider("PROPLEDGER_", ".", nil), nil); err != nil {
		return fmt.Errorf("loading env config: %w", err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return fmt.Errorf("unmarshalling env config: %w", err)
	}
	return nil
}
