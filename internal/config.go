package internal

import (
	"log"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/paverbrasil/paveradmin/internal/util"
)

var Config *Configuration

type Configuration struct {
	SessionExpiresHours int64  `yaml:"session_expires_hours"`
	OwnerOpenID         string `yaml:"owner_open_id"`
}

func InitializeConfiguration() {
	Config = &Configuration{
		SessionExpiresHours: 30 * 24,
	}

	configFileExists, _ := util.PathExists("config.yaml")
	if !configFileExists {
		b, err := yaml.Marshal(Config)
		if err != nil {
			log.Fatal(err)
		}
		configFile, err := os.Create("config.yaml")
		if err != nil {
			log.Fatal(err)
		}
		if _, err := configFile.Write(b); err != nil {
			log.Fatal(err)
		}
	} else {
		configBytes, err := os.ReadFile("config.yaml")
		if err != nil {
			log.Fatal(err)
		}
		if err := yaml.Unmarshal(configBytes, Config); err != nil {
			log.Fatal(err)
		}
	}
}

func UpdateConfiguration(config *Configuration) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	configFile, err := os.Create("config.yaml")
	if err != nil {
		return err
	}

	if _, err := configFile.Write(b); err != nil {
		return err
	}

	Config = config

	return nil
}
