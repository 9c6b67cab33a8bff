package config

import (
	"github.com/beegy-labs/girok-resume-api/library/pg"
	"github.com/beegy-labs/girok-resume-api/library/yamlenv"
)

type Config struct {
	Postgres pg.PostgresConfig `yaml:"postgres"`
	Kafka    KafkaConfig       `yaml:"kafka"`
	UserAPI  ApiConfig         `yaml:"userAPI"`
	Auth     AuthConfig        `yaml:"auth"`
}

type KafkaConfig struct {
	Bootstrap        *yamlenv.Env[string] `yaml:"bootstrap"`
	ProducerClientID *yamlenv.Env[string] `yaml:"producer_client_id"`
	Topics           struct {
		Profile    *yamlenv.Env[string] `yaml:"profile"`
		Employment *yamlenv.Env[string] `yaml:"employment"`
	} `yaml:"topics"`
}

type ApiConfig struct {
	Port *yamlenv.Env[int] `yaml:"port"`
}

type AuthConfig struct {
	JWTSecret *yamlenv.Env[string] `yaml:"jwt_secret"`
}
