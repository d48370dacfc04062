package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Train TrainConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type TrainConfig struct {
	SeatsPerSection int
	TicketPrice     float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "train-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SEATS_PER_SECTION", 10)
	viper.SetDefault("TICKET_PRICE", 20.0)

	if err := viper.ReadInConfig(); err != nil {
		// Running without a .env file is fine; defaults and environment
		// variables cover everything.
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Train: TrainConfig{
			SeatsPerSection: viper.GetInt("SEATS_PER_SECTION"),
			TicketPrice:     viper.GetFloat64("TICKET_PRICE"),
		},
	}

	return config, nil
}
