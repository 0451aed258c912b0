// Copyright 2025 Certen Protocol
//
// Package celconfig loads the YAML configuration for a CEL deployment:
// which signer a node uses, which witness endpoints to call during
// migration, the Bitcoin inscription parameters for btco migration,
// and the default verification policy. Environment variables in the
// form ${VAR_NAME} or ${VAR_NAME:-default} are substituted before
// parsing, so secrets never need to live in the file itself.
package celconfig

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config is the top-level shape of a CEL deployment's configuration file.
type Config struct {
	Environment string            `yaml:"environment"`
	Logging     LoggingSettings   `yaml:"logging"`
	Signer      SignerSettings    `yaml:"signer"`
	Witnesses   []WitnessEndpoint `yaml:"witnesses"`
	Bitcoin     BitcoinSettings   `yaml:"bitcoin"`
	Layer       LayerSettings     `yaml:"layer"`
	Verify      VerifySettings    `yaml:"verify"`
}

// LoggingSettings controls the level and format of the ambient logger.
type LoggingSettings struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// SignerSettings identifies the key material a controller Signer uses.
type SignerSettings struct {
	PrivateKeySeedEnv  string `yaml:"private_key_seed_env"`
	VerificationMethod string `yaml:"verification_method"`
}

// WitnessEndpoint is one configured HTTP witness, called in the order
// witnesses appear in the file during a peer→webvh migration.
type WitnessEndpoint struct {
	Name    string   `yaml:"name"`
	URL     string   `yaml:"url"`
	Timeout Duration `yaml:"timeout"`
}

// BitcoinSettings configures the reference Bitcoin inscriber used by
// the webvh→btco migration manager.
type BitcoinSettings struct {
	FeeRateSatVByte float64 `yaml:"fee_rate_sat_vbyte"`
	Network         string  `yaml:"network"` // mainnet, testnet, regtest
}

// LayerSettings configures the webvh migration manager's defaults.
type LayerSettings struct {
	Domain                 string `yaml:"domain"`
	RequiredWebVHWitnesses int    `yaml:"required_webvh_witnesses"`
}

// VerifySettings configures the default verification policy applied
// by the CLI inspector and any service that calls pkg/verify.
type VerifySettings struct {
	RequireWitness bool `yaml:"require_witness"`
}

// envVarPattern matches ${VAR_NAME} or ${VAR_NAME:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		varName := groups[1]
		defaultValue := ""
		if len(groups) >= 4 {
			defaultValue = groups[3]
		}
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return defaultValue
	})
}

// Load reads and parses a Config from path, substituting ${VAR}
// environment references before YAML parsing, and applies defaults to
// any unset fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("celconfig: read %s: %w", path, err)
	}

	expanded := substituteEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("celconfig: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Bitcoin.Network == "" {
		c.Bitcoin.Network = "mainnet"
	}
	if c.Layer.RequiredWebVHWitnesses < 0 {
		c.Layer.RequiredWebVHWitnesses = 0
	}
	for i := range c.Witnesses {
		if c.Witnesses[i].Timeout == 0 {
			c.Witnesses[i].Timeout = Duration(30_000_000_000) // 30s
		}
	}
}
