package configs

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig   `mapstructure:"app"`
	Log   LogConfig   `mapstructure:"log"`
	DB    DBConfig    `mapstructure:"db"`
	Store StoreConfig `mapstructure:"store"`
	Stats StatsConfig `mapstructure:"stats"`
	Redis RedisConfig `mapstructure:"redis"`
	Views ViewsConfig `mapstructure:"views"`
	Admin AdminConfig `mapstructure:"admin"`
	Cors  CorsConfig  `mapstructure:"cors"`
	Rate  RateConfig  `mapstructure:"rate"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN              string        `mapstructure:"dsn"`
	User             string        `mapstructure:"user"`
	Password         string        `mapstructure:"password"`
	Host             string        `mapstructure:"host"`
	Port             string        `mapstructure:"port"`
	Name             string        `mapstructure:"name"`
	SSLMode          string        `mapstructure:"sslmode"`
	StatementTimeout time.Duration `mapstructure:"statement_timeout"`
	MaxOpenConns     int           `mapstructure:"max_open_conns"`
	MaxIdleConns     int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime  time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime  time.Duration `mapstructure:"conn_max_idle_time"`
	Migrations       bool          `mapstructure:"migrations"`
	SlowThreshold    time.Duration `mapstructure:"slow_threshold"`
}

// StoreConfig.Driver is "postgres" or "memory".
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	Seed   bool   `mapstructure:"seed"`
}

type StatsConfig struct {
	ServerURL string        `mapstructure:"server_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ViewsConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type AdminConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type CorsConfig struct {
	Origins string `mapstructure:"origins"`
}

type RateConfig struct {
	LimitMax int `mapstructure:"limit_max"`
}

// LoadEnv loads .env into the process environment when present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
		return
	}
	log.Println(".env file loaded")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// Load reads the configuration from the environment. Keys map to env vars by
// upper-casing and replacing dots with underscores (db.max_open_conns -> DB_MAX_OPEN_CONNS).
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "ewm-main-service")
	v.SetDefault("app.port", "3000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", true)
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.name", "ewm")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.statement_timeout", "3s")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", "10m")
	v.SetDefault("db.conn_max_idle_time", "60s")
	v.SetDefault("db.migrations", true)
	v.SetDefault("db.slow_threshold", "200ms")
	v.SetDefault("store.driver", "postgres")
	v.SetDefault("store.seed", false)
	v.SetDefault("stats.server_url", "http://localhost:9090")
	v.SetDefault("stats.timeout", "3s")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("views.cache_ttl", "30s")
	v.SetDefault("admin.jwt_secret", "")
	v.SetDefault("cors.origins", "*")
	v.SetDefault("rate.limit_max", 100)

	// PORT is the conventional name on hosting platforms.
	if port := os.Getenv("PORT"); port != "" {
		v.Set("app.port", port)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	switch cfg.Store.Driver {
	case "postgres", "memory":
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
	return cfg, nil
}

// PostgresURL builds the connection URL used by both GORM and the migrator.
func (c DBConfig) PostgresURL() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}
