package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/propledger/internal/flagx"
)

// parseJson overlays Config with values loaded from the JSON file
// named by the -c/-config flag. No flag means no JSON overlay.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", jsonConfigFile, err)
	}
	return nil
}
