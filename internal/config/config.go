package config

import (
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/renthub/rental-service/pkg/kafka"
	"github.com/renthub/rental-service/pkg/logger"
	"github.com/renthub/rental-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"RENTAL_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"RENTAL_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration
}

// Storage selects the repository backend. "memory" keeps everything
// in-process, "postgres" wires the pgx pool.
type Storage struct {
	Backend string `envconfig:"STORAGE_BACKEND" default:"memory"`
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Storage  Storage    `yaml:"storage"`
	Kafka    kafka.Config
	Database postgres.Config `yaml:"db"`
	Log      logger.Log      `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
	})

	return cfg
}
