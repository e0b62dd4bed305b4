package config

import (
	"os"
	"strconv"
)

// parseEnv overlays Config fields from RELAY_* environment variables.
// Unset variables leave the current value in place.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("RELAY_ADDR"); ok {
		config.Addr = v
	}
	if v, ok := os.LookupEnv("RELAY_BACKEND"); ok {
		config.Backend = v
	}
	if v, ok := os.LookupEnv("RELAY_REDIS_ADDR"); ok {
		config.RedisAddr = v
	}
	if v, ok := os.LookupEnv("RELAY_REDIS_PASSWORD"); ok {
		config.RedisPassword = v
	}
	if v, ok := os.LookupEnv("RELAY_REDIS_DB"); ok {
		if db, err := strconv.Atoi(v); err == nil {
			config.RedisDB = db
		}
	}
	if v, ok := os.LookupEnv("RELAY_MONGO_URI"); ok {
		config.MongoURI = v
	}
	if v, ok := os.LookupEnv("RELAY_MONGO_DB"); ok {
		config.MongoDatabase = v
	}
	if v, ok := os.LookupEnv("RELAY_LOG_LEVEL"); ok {
		config.LogLevel = v
	}
}
