package util

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func SetConfigDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAP_DATA_FILE", "./data/mapdata.txt")
	viper.SetDefault("USE_RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 20.0)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("NEAREST_SEARCH_RADIUS_KM", 0.5)
	viper.SetDefault("ROUTE_CACHE_SIZE", 1<<12)
	viper.SetDefault("HASHMAP_MAX_LOAD_FACTOR", 0.75)
}

// ReadConfig loads ./.env (if any) into the environment, then ./data/config.yaml (if any). Environment variables
// always win over the config file.
func ReadConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("fatal error .env file: %w", err)
	}

	SetConfigDefaults()
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
