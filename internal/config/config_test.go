package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.Addr, "localhost:9090")
	assert.Equal(t, c.Backend, BackendMemory)
	assert.Equal(t, c.RedisAddr, "localhost:6379")
	assert.Equal(t, c.RedisPassword, "")
	assert.Equal(t, c.RedisDB, 0)
	assert.Equal(t, c.MongoURI, "mongodb://localhost:27017")
	assert.Equal(t, c.MongoDatabase, "relay")
	assert.Equal(t, c.ShutdownTimeout, 5*time.Second)
	assert.Equal(t, c.LogLevel, "info")
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("RELAY_ADDR", ":8080")
	t.Setenv("RELAY_BACKEND", BackendPersistent)
	t.Setenv("RELAY_REDIS_ADDR", "redis:6379")
	t.Setenv("RELAY_REDIS_DB", "3")
	t.Setenv("RELAY_MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("RELAY_MONGO_DB", "prod")
	t.Setenv("RELAY_LOG_LEVEL", "debug")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, c.Addr, ":8080")
	assert.Equal(t, c.Backend, BackendPersistent)
	assert.Equal(t, c.RedisAddr, "redis:6379")
	assert.Equal(t, c.RedisDB, 3)
	assert.Equal(t, c.MongoURI, "mongodb://mongo:27017")
	assert.Equal(t, c.MongoDatabase, "prod")
	assert.Equal(t, c.LogLevel, "debug")
}

func TestParseEnv_IgnoresUnsetAndBadValues(t *testing.T) {
	t.Setenv("RELAY_REDIS_DB", "not-a-number")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, c.RedisDB, 0)
	assert.Equal(t, c.Addr, "localhost:9090")
}
