package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/garaga28/Librario/internal/gateway"
	"github.com/garaga28/Librario/internal/server"
	"github.com/garaga28/Librario/pkg/kafka"
	"github.com/garaga28/Librario/pkg/logger"
	"github.com/garaga28/Librario/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type Sweep struct {
	Interval time.Duration `yaml:"interval" envconfig:"SWEEP_INTERVAL" default:"1h"`
}

type Config struct {
	Server   server.Config  `yaml:"server"`
	Kafka    kafka.Config   `yaml:"kafka"`
	Database postgres.DB    `yaml:"db"`
	Gateway  gateway.Config `yaml:"gateway"`
	Sweep    Sweep          `yaml:"sweep"`
	Log      logger.Log     `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
