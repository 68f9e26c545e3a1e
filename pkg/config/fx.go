package config

import (
	"os"

	"github.com/pseudomuto/nodeseed/pkg/consts"
	"go.uber.org/fx"
)

// EnvConfigFile overrides the default configuration file path
const EnvConfigFile = "NODESEED_CONFIG"

var Module = fx.Module("config", fx.Provide(
	// Loads nodeseed.yaml (or $NODESEED_CONFIG) from the working directory if it
	// exists and falls back to defaults otherwise. The root command reloads it in
	// place once --dir and --config have been parsed.
	func() (*Config, error) {
		if path := os.Getenv(EnvConfigFile); path != "" {
			return Resolve(path, true)
		}

		return Resolve(consts.DefaultConfigFile, false)
	},
))
