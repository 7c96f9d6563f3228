package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	envPrefix      = "CERTFORM"
	defaultEnvFile = ".env"
)

// Keys understood by Load. Environment variables use the CERTFORM_ prefix
// with dots replaced by underscores (server.address -> CERTFORM_SERVER_ADDRESS).
const (
	KeyEnv             = "app_env"
	KeyServerAddress   = "server.address"
	KeyShutdownTimeout = "server.shutdown_timeout"
	KeySessionTTL      = "session.ttl"
	KeySessionSweep    = "session.sweep_interval"
	KeyLogLevel        = "log.level"
	KeyBarangay        = "locality.barangay"
	KeyCity            = "locality.city"
	KeyPreviewQR       = "preview.qr"
	KeyPreviewQRSize   = "preview.qr_size"
)

type Config struct {
	Env      string
	Server   Server
	Session  Session
	Log      Log
	Locality Locality
	Preview  Preview
}

type Server struct {
	Address         string
	ShutdownTimeout time.Duration
}

type Session struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

type Log struct {
	Level string
}

type Locality struct {
	Barangay string
	City     string
}

type Preview struct {
	QR     bool
	QRSize int
}

// Option customises Load.
type Option func(*loadOptions)

type loadOptions struct {
	envFile     string
	envFileSet  bool
	configFile  string
	overrides   map[string]any
	environment func(string) (string, bool)
}

// WithEnvFile loads variables from path instead of ./.env. An explicit file
// must exist.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) {
		o.envFile = path
		o.envFileSet = path != ""
	}
}

// WithConfigFile reads a YAML/JSON/TOML config file.
func WithConfigFile(path string) Option {
	return func(o *loadOptions) {
		o.configFile = path
	}
}

// WithOverride sets a key with the highest precedence, used for CLI flags.
func WithOverride(key string, value any) Option {
	return func(o *loadOptions) {
		if o.overrides == nil {
			o.overrides = make(map[string]any)
		}
		o.overrides[key] = value
	}
}

// Load resolves configuration from defaults, the config file, the .env file,
// the environment and overrides, in increasing precedence.
func Load(options ...Option) (*Config, error) {
	opts := loadOptions{envFile: defaultEnvFile}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}

	if err := godotenv.Load(opts.envFile); err != nil {
		if opts.envFileSet || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load env file %q: %w", opts.envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.configFile != "" {
		v.SetConfigFile(opts.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", opts.configFile, err)
		}
	}
	for key, value := range opts.overrides {
		v.Set(key, value)
	}

	cfg := &Config{
		Env: strings.ToLower(strings.TrimSpace(v.GetString(KeyEnv))),
		Server: Server{
			Address:         v.GetString(KeyServerAddress),
			ShutdownTimeout: v.GetDuration(KeyShutdownTimeout),
		},
		Session: Session{
			TTL:           v.GetDuration(KeySessionTTL),
			SweepInterval: v.GetDuration(KeySessionSweep),
		},
		Log: Log{Level: v.GetString(KeyLogLevel)},
		Locality: Locality{
			Barangay: v.GetString(KeyBarangay),
			City:     v.GetString(KeyCity),
		},
		Preview: Preview{
			QR:     v.GetBool(KeyPreviewQR),
			QRSize: v.GetInt(KeyPreviewQRSize),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyEnv, EnvLocal)
	v.SetDefault(KeyServerAddress, ":8080")
	v.SetDefault(KeyShutdownTimeout, 10*time.Second)
	v.SetDefault(KeySessionTTL, 30*time.Minute)
	v.SetDefault(KeySessionSweep, time.Minute)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyBarangay, "West Rembo")
	v.SetDefault(KeyCity, "Taguig City")
	v.SetDefault(KeyPreviewQR, false)
	v.SetDefault(KeyPreviewQRSize, 128)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("config: %s must be one of %s, %s, %s; got %q", KeyEnv, EnvLocal, EnvDev, EnvProd, c.Env)
	}
	if strings.TrimSpace(c.Server.Address) == "" {
		return fmt.Errorf("config: %s is required", KeyServerAddress)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("config: %s must be positive", KeySessionTTL)
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("config: %s must be positive", KeySessionSweep)
	}
	if c.Preview.QR && c.Preview.QRSize <= 0 {
		return fmt.Errorf("config: %s must be positive when %s is set", KeyPreviewQRSize, KeyPreviewQR)
	}
	return nil
}
