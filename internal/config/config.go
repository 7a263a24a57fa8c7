// Package config loads the oracle configuration from ORACLE_* environment
// variables.
package config

import (
	"time"

	"github.com/gabapcia/oraclewatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

const prefix = "ORACLE"

type Stellar struct {
	RPCURL            string        `envconfig:"RPC_URL" default:"https://soroban-testnet.stellar.org" validate:"required,url"`
	NetworkPassphrase string        `envconfig:"NETWORK_PASSPHRASE" default:"Test SDF Network ; September 2015" validate:"required"`
	Seed              string        `envconfig:"SEED" required:"true" validate:"required,stellar_seed"`
	Contract          string        `envconfig:"CONTRACT" required:"true" validate:"required,stellar_contract"`
	Method            string        `envconfig:"METHOD" default:"bump" validate:"required"`
	BaseFee           int64         `envconfig:"BASE_FEE" default:"100" validate:"gte=100"`
	TxTimeout         time.Duration `envconfig:"TX_TIMEOUT" default:"30s" validate:"gt=0"`
	Simulate          bool          `envconfig:"SIMULATE" default:"true"`
}

type Poll struct {
	Interval time.Duration `envconfig:"INTERVAL" default:"2s" validate:"gt=0"`
	Deadline time.Duration `envconfig:"DEADLINE" default:"60s" validate:"gt=0"`
}

type Schedule struct {
	// A non-positive cadence disables the kind.
	WildfireCadence  time.Duration `envconfig:"WILDFIRE_CADENCE" default:"5m"`
	FlightCadence    time.Duration `envconfig:"FLIGHT_CADENCE" default:"30s"`
	ReportCap        int           `envconfig:"REPORT_CAP" default:"5" validate:"gte=1"`
	InterTargetDelay time.Duration `envconfig:"INTER_TARGET_DELAY" default:"2s" validate:"gte=0"`
}

type FIRMS struct {
	MapKey    string  `envconfig:"MAP_KEY" required:"true" validate:"required"`
	BaseURL   string  `envconfig:"BASE_URL" default:"https://firms.modaps.eosdis.nasa.gov" validate:"required,url"`
	Source    string  `envconfig:"SOURCE" default:"VIIRS_SNPP_NRT" validate:"required"`
	DaysBack  int     `envconfig:"DAYS_BACK" default:"10" validate:"gte=1,lte=10"`
	HalfWidth float64 `envconfig:"HALF_WIDTH" default:"0.05" validate:"gt=0"`
}

type AeroAPI struct {
	APIKey      string        `envconfig:"API_KEY" required:"true" validate:"required"`
	BaseURL     string        `envconfig:"BASE_URL" default:"https://aeroapi.flightaware.com/aeroapi" validate:"required,url"`
	DelayCutoff time.Duration `envconfig:"DELAY_CUTOFF" default:"15m" validate:"gt=0"`
}

type Nominatim struct {
	BaseURL   string `envconfig:"BASE_URL" default:"https://nominatim.openstreetmap.org" validate:"required,url"`
	UserAgent string `envconfig:"USER_AGENT" default:"oraclewatch/1.0" validate:"required"`
}

// Storage selects where targets live. Redis is used when RedisAddr is set,
// the YAML file otherwise.
type Storage struct {
	TargetsFile   string `envconfig:"TARGETS_FILE" default:"targets.yaml"`
	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	RedisPrefix   string `envconfig:"REDIS_PREFIX" default:"oraclewatch" validate:"required"`
}

// UseRedis reports whether targets are kept in Redis.
func (s Storage) UseRedis() bool {
	return s.RedisAddr != ""
}

// Kafka publishing is enabled when Brokers is not empty.
type Kafka struct {
	Brokers []string `envconfig:"BROKERS" validate:"omitempty,dive,hostname_port"`
	Topic   string   `envconfig:"TOPIC" default:"oracle.reports" validate:"required"`
}

func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"oraclewatch" validate:"required"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	Stellar   Stellar   `envconfig:"STELLAR"`
	Poll      Poll      `envconfig:"POLL"`
	Schedule  Schedule  `envconfig:"SCHEDULE"`
	FIRMS     FIRMS     `envconfig:"FIRMS"`
	AeroAPI   AeroAPI   `envconfig:"AEROAPI"`
	Nominatim Nominatim `envconfig:"NOMINATIM"`
	Storage   Storage   `envconfig:"STORAGE"`
	Kafka     Kafka     `envconfig:"KAFKA"`
}

// Load reads the environment and validates the result. Missing secrets and
// malformed Stellar keys are reported as errors.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
