package config

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Transport kinds.
const (
	TransportNats string = "nats"
	TransportWs   string = "ws"
)

// ClientConfig contains the table client YAML configuration.
type ClientConfig struct {
	TableCode string      `yaml:"table-code"`
	Transport string      `yaml:"transport"`
	NatsURL   string      `yaml:"nats-url"`
	WsURL     string      `yaml:"ws-url"`
	Name      string      `yaml:"name"`
	Redis     RedisConfig `yaml:"redis"`
	Chat      ChatConfig  `yaml:"chat"`
}

// RedisConfig points at the redis used for identity persistence. When
// disabled, the identity only lives as long as the process.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	PW      string `yaml:"pw"`
	DB      int    `yaml:"db"`
}

// ChatConfig tunes the outgoing chat throttle.
type ChatConfig struct {
	MessagesPerMinute int `yaml:"messages-per-minute"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ReadClientConfig loads and validates the client configuration file.
func ReadClientConfig(fileName string) (*ClientConfig, error) {
	bytes, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Error reading client config file [%s]", fileName)
	}

	var conf ClientConfig
	err = yaml.Unmarshal(bytes, &conf)
	if err != nil {
		return nil, errors.Wrapf(err, "Error parsing YAML file [%s]", fileName)
	}

	err = conf.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "Error validating client config [%s]", fileName)
	}
	conf.applyDefaults()
	return &conf, nil
}

func (c *ClientConfig) Validate() error {
	if c.TableCode == "" {
		return fmt.Errorf("table-code must not be empty")
	}
	switch c.Transport {
	case "", TransportNats, TransportWs:
	default:
		return fmt.Errorf("Unknown transport [%s]", c.Transport)
	}
	if c.Transport == TransportWs && c.WsURL == "" {
		return fmt.Errorf("ws-url must be set for the ws transport")
	}
	return nil
}

func (c *ClientConfig) applyDefaults() {
	if c.Transport == "" {
		c.Transport = TransportNats
	}
	if c.Redis.Enabled {
		if c.Redis.Host == "" {
			c.Redis.Host = "localhost"
		}
		if c.Redis.Port == 0 {
			c.Redis.Port = 6379
		}
	}
	if c.Chat.MessagesPerMinute == 0 {
		c.Chat.MessagesPerMinute = 20
	}
}
