package shared

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv      string `mapstructure:"app_env"`
	HTTPAddr    string `mapstructure:"http_addr"`
	MetricsAddr string `mapstructure:"metrics_addr"`

	// Document backend: file|redis|mysql|sqlite
	Backend          string `mapstructure:"store_backend"`
	DataDir          string `mapstructure:"data_dir"`
	CustomersFile    string `mapstructure:"customers_file"`
	HotelsFile       string `mapstructure:"hotels_file"`
	ReservationsFile string `mapstructure:"reservations_file"`
	MySQLDSN         string `mapstructure:"mysql_dsn"`
	SQLitePath       string `mapstructure:"sqlite_path"`
	RedisAddr        string `mapstructure:"redis_addr"`
	RedisPass        string `mapstructure:"redis_password"`
	RedisDB          int    `mapstructure:"redis_db"`
	RedisPrefix      string `mapstructure:"redis_prefix"`

	// hotelctl remote mode
	APIBase string `mapstructure:"api_base_url"`
	APIRPS  int    `mapstructure:"api_rps"`

	RequestTimeout time.Duration `mapstructure:"-"`
}

var defaults = map[string]any{
	"app_env":                 "prod",
	"http_addr":               ":8080",
	"metrics_addr":            "",
	"store_backend":           "file",
	"data_dir":                ".",
	"customers_file":          "customers.json",
	"hotels_file":             "hotels.json",
	"reservations_file":       "reservations.json",
	"mysql_dsn":               "root:root@tcp(localhost:3306)/hotel?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
	"sqlite_path":             "hotel.db",
	"redis_addr":              "localhost:6379",
	"redis_password":          "",
	"redis_db":                0,
	"redis_prefix":            "hotel:",
	"api_base_url":            "http://localhost:8080",
	"api_rps":                 10,
	"request_timeout_seconds": 15,
}

// Load reads defaults, then an optional hotel.yaml (./, ./configs or the file
// named by HOTEL_CONFIG), then environment variables (HTTP_ADDR, DATA_DIR, ...).
func Load() Config {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if f := v.GetString("hotel_config"); f != "" {
		v.SetConfigFile(f)
	} else {
		v.SetConfigName("hotel")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warn().Err(err).Msg("config file ignored")
		}
	} else {
		log.Debug().Str("config_file", v.ConfigFileUsed()).Msg("config file loaded")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Warn().Err(err).Msg("config decode failed, using defaults")
	}
	c.RequestTimeout = time.Duration(v.GetInt("request_timeout_seconds")) * time.Second
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 15 * time.Second
	}
	if c.APIRPS <= 0 {
		c.APIRPS = 10
	}
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	return c
}
