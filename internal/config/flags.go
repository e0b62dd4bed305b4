package config

import (
	"flag"
	"os"
	"time"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., "localhost:9090")
//	-b string   store backend: "memory" or "persistent"
//	-r string   redis address (persistent backend)
//	-m string   mongo URI (persistent backend)
//	-d string   mongo database name
//	-t int      shutdown timeout, seconds
//	-l string   log level
func parseFlags(config *Config) {
	fs := flag.NewFlagSet("relay", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.Backend, "b", config.Backend, "store backend (memory|persistent)")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.MongoURI, "m", config.MongoURI, "mongo URI")
	fs.StringVar(&config.MongoDatabase, "d", config.MongoDatabase, "mongo database name")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
