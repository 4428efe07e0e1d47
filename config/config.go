package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Schedule ScheduleConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type ScheduleConfig struct {
	// Timezone is the display location used for calendar-day boundaries,
	// grid anchoring and local timestamp parsing.
	Timezone     string
	PastPageSize int
	ReferenceTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("SCHEDULE_TIMEZONE", "Europe/Berlin")
	viper.SetDefault("SCHEDULE_PAST_PAGE_SIZE", 5)
	viper.SetDefault("SCHEDULE_REFERENCE_TTL", "5m")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	referenceTTL, err := time.ParseDuration(viper.GetString("SCHEDULE_REFERENCE_TTL"))
	if err != nil {
		referenceTTL = 5 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Schedule: ScheduleConfig{
			Timezone:     viper.GetString("SCHEDULE_TIMEZONE"),
			PastPageSize: viper.GetInt("SCHEDULE_PAST_PAGE_SIZE"),
			ReferenceTTL: referenceTTL,
		},
	}

	return config, nil
}
