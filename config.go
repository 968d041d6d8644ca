package sqlkit

import (
	"os"

	"github.com/codingconcepts/env"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Driver        string `json:"driver" yaml:"driver" env:"SQLKIT_DRIVER"`
	Dialect       string `json:"dialect" yaml:"dialect" env:"SQLKIT_DIALECT"`
	DSN           string `json:"dsn" yaml:"dsn" env:"SQLKIT_DSN"`
	MigrationsDir string `json:"migrationsDir" yaml:"migrationsDir" env:"SQLKIT_MIGRATIONS_DIR"`
	Echo          bool   `json:"echo" yaml:"echo" env:"SQLKIT_ECHO"`
}

func LoadConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := env.Set(&config); err != nil {
		return nil, err
	}

	return &config, err
}
