package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultOwner is the deployer principal the simulated contracts ship with.
const DefaultOwner = "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"

// Config carries everything the simulator needs to build a host and its ledgers.
type Config struct {
	AppEnv      string `mapstructure:"app_env"`
	LogLevel    string `mapstructure:"log_level"`
	ContractID  string `mapstructure:"ledger_contract_id"`
	Owner       string `mapstructure:"ledger_owner"`
	Sender      string `mapstructure:"ledger_sender"`
	BlockHeight uint64 `mapstructure:"ledger_block_height"`
}

// Load reads an optional dotenv file, then environment variables, and applies defaults.
// envFile may be empty, in which case ".env" is tried; a missing file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "")
	v.SetDefault("ledger_contract_id", "charity-ledger")
	v.SetDefault("ledger_owner", DefaultOwner)
	v.SetDefault("ledger_sender", "")
	v.SetDefault("ledger_block_height", 100)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes identities and checks the owner is set. A blank sender falls back
// to the owner. Callers that override fields after Load must run it again.
func (c *Config) Validate() error {
	c.Owner = strings.TrimSpace(c.Owner)
	c.Sender = strings.TrimSpace(c.Sender)

	if c.Owner == "" {
		return fmt.Errorf("LEDGER_OWNER is required")
	}
	if c.Sender == "" {
		c.Sender = c.Owner
	}
	return nil
}
