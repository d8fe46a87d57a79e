package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/pttech/storefront/internal/log"
)

type Application struct {
	Env            string `mapstructure:"env"             json:"env"`
	BaseURL        string `mapstructure:"base_url"        json:"base_url"`
	LogFile        string `mapstructure:"log_file"        json:"log_file"`
	SessionFile    string `mapstructure:"session_file"    json:"session_file"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" json:"timeout_seconds"`
	PageSize       int    `mapstructure:"page_size"       json:"page_size"`
}

type Otel struct {
	Host string `mapstructure:"host" json:"host"`
	Port int    `mapstructure:"port" json:"port"`
}

type Config struct {
	Application `mapstructure:"application" json:"application"`
	Otel        `mapstructure:"otel"        json:"otel"`
}

var (
	once   sync.Once
	config *Config
)

func InitConfig(c context.Context, filename string) *Config {
	cfg := Config{}
	once.Do(func() {
		logger := zerolog.Ctx(c).
			With().
			Str(log.KeyTag, "main InitConfig").
			Str(log.KeyProcess, "init config").
			Str("filename", filename).
			Logger()

		viper.SetConfigName(filename)
		viper.AddConfigPath("./env")
		viper.SetConfigType("yaml")
		viper.AutomaticEnv()

		viper.SetDefault("application.env", "development")
		viper.SetDefault("application.base_url", "http://10.0.2.2:8081")
		viper.SetDefault("application.log_file", "/var/log/storefront.log")
		viper.SetDefault("application.timeout_seconds", 15)
		viper.SetDefault("application.page_size", 2)
		viper.SetDefault("otel.host", "otel-collector")
		viper.SetDefault("otel.port", 4317)

		logger = logger.With().Str(log.KeyProcess, "reading config").Logger()
		logger.Info().Msg("reading config")
		err := viper.ReadInConfig()
		if err != nil {
			logger.Warn().Err(err).Msg("config file not found, using defaults")
		}
		logger.Info().Msg("read config")

		logger = logger.With().Str(log.KeyProcess, "unmarshaling config").Logger()
		logger.Info().Msg("unmarshaling config")
		err = viper.Unmarshal(&cfg)
		if err != nil {
			err = fmt.Errorf("error unmarshaling config with error=%w", err)
			logger.Fatal().Err(err).Msg(err.Error())
		}
		config = &cfg
		logger = logger.With().Any(log.KeyConfig, cfg).Logger()
		logger.Info().Msg("unmarshalled config")
	})
	return config
}

func (o Otel) Endpoint() string {
	return fmt.Sprintf("%s:%d", o.Host, o.Port)
}
