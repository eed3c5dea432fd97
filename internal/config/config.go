package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	MongoURI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"repairshop"`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"changeme"`
	ServerPort    string `env:"SERVER_PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse environment: %v", err)
	}
	return cfg
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
