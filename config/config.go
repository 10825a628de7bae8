package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	API struct {
		BaseURL        string `mapstructure:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"api"`
	Storage struct {
		CredentialFile string `mapstructure:"credential_file"`
	} `mapstructure:"storage"`
	Session struct {
		AutoLogoutOnExpiry bool `mapstructure:"auto_logout_on_expiry"`
	} `mapstructure:"session"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("api.base_url", "http://localhost:8080")
	viper.SetDefault("api.timeout_seconds", 10)
	viper.SetDefault("storage.credential_file", ".bank-credential")
	viper.SetDefault("session.auto_logout_on_expiry", false)

	viper.AutomaticEnv()

	// A client must be able to start on defaults alone; only a broken
	// config file is fatal, not a missing one.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
