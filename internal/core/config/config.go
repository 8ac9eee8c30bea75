package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeoutSec  int    `mapstructure:"read_timeout_sec"`
	WriteTimeoutSec int    `mapstructure:"write_timeout_sec"`
	IdleTimeoutSec  int    `mapstructure:"idle_timeout_sec"`
}

type App struct {
	Name           string `mapstructure:"name"`
	Env            string `mapstructure:"env"`
	FrontendOrigin string `mapstructure:"frontend_origin"`
	HTTP           HTTP   `mapstructure:"http"`
}

type Log struct {
	Level      string `mapstructure:"level"`
	JSON       bool   `mapstructure:"json"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type JWT struct {
	Secret            string `mapstructure:"secret"`
	Issuer            string `mapstructure:"issuer"`
	AccessTokenTTLMin int    `mapstructure:"access_token_ttl_min"`
}

type Auth struct {
	// ProtectWrites mounts the JWT middleware on the mutating REST route.
	// Off by default: the historical surface left every data route open.
	ProtectWrites bool `mapstructure:"protect_writes"`
}

type DB struct {
	Driver             string `mapstructure:"driver"`
	DSN                string `mapstructure:"dsn"`
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port"`
	Username           string `mapstructure:"username"`
	Password           string `mapstructure:"password"`
	Name               string `mapstructure:"name"`
	MaxOpenConns       int    `mapstructure:"max_open_conns"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMin int    `mapstructure:"conn_max_lifetime_min"`
	AutoMigrate        bool   `mapstructure:"auto_migrate"`
	Seed               bool   `mapstructure:"seed"`
	LogLevel           string `mapstructure:"log_level"`
}

type Config struct {
	App  App  `mapstructure:"app"`
	Log  Log  `mapstructure:"log"`
	JWT  JWT  `mapstructure:"jwt"`
	Auth Auth `mapstructure:"auth"`
	DB   DB   `mapstructure:"db"`
}

// Load reads the yaml config (optional) and the environment. Besides the
// APP_-prefixed keys, the bare names the original deployment exported
// (ENDPOINT/PORT/USERNAME/PASSWORD/HOST and friends) are still honored.
func Load(path string) *Config {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)
	bindLegacyEnv(v)

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.Fatalf("read config %s: %v", path, err)
		}
	} else {
		v.SetConfigFile("./configs/config.local.yaml")
		_ = v.ReadInConfig() // env-only deployments are fine
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	return &c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "vitalcore")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.read_timeout_sec", 5)
	v.SetDefault("app.http.write_timeout_sec", 10)
	v.SetDefault("app.http.idle_timeout_sec", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("jwt.issuer", "vitalcore")
	v.SetDefault("jwt.access_token_ttl_min", 60)
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.name", "vitalsource")
	v.SetDefault("db.max_open_conns", 50)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime_min", 30)
	v.SetDefault("db.auto_migrate", true)
	v.SetDefault("db.seed", false)
	v.SetDefault("db.log_level", "warn")
}

func bindLegacyEnv(v *viper.Viper) {
	_ = v.BindEnv("db.dsn", "APP_DB_DSN", "ENDPOINT")
	_ = v.BindEnv("db.host", "APP_DB_HOST", "HOST")
	_ = v.BindEnv("db.port", "APP_DB_PORT", "PORT")
	_ = v.BindEnv("db.username", "APP_DB_USERNAME", "USERNAME")
	_ = v.BindEnv("db.password", "APP_DB_PASSWORD", "PASSWORD")
	_ = v.BindEnv("app.http.port", "APP_APP_HTTP_PORT", "HTTP_PORT")
	_ = v.BindEnv("app.frontend_origin", "APP_APP_FRONTEND_ORIGIN", "FRONTEND_ORIGIN")
	_ = v.BindEnv("jwt.secret", "APP_JWT_SECRET", "JWT_SECRET", "SECRET")
}
