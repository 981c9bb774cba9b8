package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Ledger  LedgerConfig  `mapstructure:"ledger"`
	Matcher MatcherConfig `mapstructure:"matcher"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Addr returns the listen address for the operational API.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LedgerConfig describes the escrow ledger endpoint: the JSON-RPC node, the
// signing credential for assignment transactions, and the three contract
// addresses (payment factory escrow, solver registry, settlement token).
type LedgerConfig struct {
	RPCURL          string `mapstructure:"rpc_url"`
	ChainID         int64  `mapstructure:"chain_id"`
	PrivateKey      string `mapstructure:"private_key"` // hex-encoded secp256k1 key
	PaymentFactory  string `mapstructure:"payment_factory"`
	SolverRegistry  string `mapstructure:"solver_registry"`
	SettlementToken string `mapstructure:"settlement_token"`
}

type MatcherConfig struct {
	GracePeriod    time.Duration `mapstructure:"grace_period"`    // expiry headroom below which a payment is skipped
	RetryAttempts  int           `mapstructure:"retry_attempts"`  // total assignSolver attempts
	RetryBackoff   time.Duration `mapstructure:"retry_backoff"`   // fixed delay between attempts
	AttemptTimeout time.Duration `mapstructure:"attempt_timeout"` // per-attempt deadline for submit + inclusion wait
	MaxConcurrent  int           `mapstructure:"max_concurrent"`  // watcher worker pool size
	GuardTTL       time.Duration `mapstructure:"guard_ttl"`       // per-payment claim lifetime if the holder dies
	ResubBackoff   time.Duration `mapstructure:"resub_backoff"`   // delay before re-subscribing after a stream failure
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"` // off = in-process match guard, no rate limiting
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SME_ (Solver Matching
// Engine). Nested keys use underscore: SME_LEDGER_RPC_URL, SME_REDIS_HOST.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("ledger.rpc_url", "http://localhost:8545")
	v.SetDefault("ledger.chain_id", 31611)
	v.SetDefault("ledger.private_key", "")
	v.SetDefault("ledger.payment_factory", "")
	v.SetDefault("ledger.solver_registry", "")
	v.SetDefault("ledger.settlement_token", "")
	v.SetDefault("matcher.grace_period", "120s")
	v.SetDefault("matcher.retry_attempts", 3)
	v.SetDefault("matcher.retry_backoff", "1s")
	v.SetDefault("matcher.attempt_timeout", "30s")
	v.SetDefault("matcher.max_concurrent", 8)
	v.SetDefault("matcher.guard_ttl", "60s")
	v.SetDefault("matcher.resub_backoff", "5s")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SME_LEDGER_RPC_URL -> ledger.rpc_url
	v.SetEnvPrefix("SME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Matcher.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (m MatcherConfig) validate() error {
	if m.RetryAttempts < 1 {
		return fmt.Errorf("matcher.retry_attempts must be >= 1, got %d", m.RetryAttempts)
	}
	if m.MaxConcurrent < 1 {
		return fmt.Errorf("matcher.max_concurrent must be >= 1, got %d", m.MaxConcurrent)
	}
	if m.GracePeriod < 0 {
		return fmt.Errorf("matcher.grace_period must not be negative")
	}
	return nil
}
