package util

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

type environment struct {
	NatsURL       string
	WsURL         string
	RedisHost     string
	RedisPort     string
	RedisPW       string
	RedisDB       string
	PrintStateMsg string
	LogLevel      string
}

// Env is a helper object for accessing environment variables.
var Env = &environment{
	NatsURL:       "NATS_URL",
	WsURL:         "WS_URL",
	RedisHost:     "REDIS_HOST",
	RedisPort:     "REDIS_PORT",
	RedisPW:       "REDIS_PW",
	RedisDB:       "REDIS_DB",
	PrintStateMsg: "PRINT_STATE_MSG",
	LogLevel:      "LOG_LEVEL",
}

func (e *environment) GetNatsURL() string {
	url := os.Getenv(e.NatsURL)
	if url == "" {
		return "nats://localhost:4222"
	}
	return url
}

func (e *environment) GetWsURL() string {
	return os.Getenv(e.WsURL)
}

func (e *environment) GetRedisHost() string {
	host := os.Getenv(e.RedisHost)
	if host == "" {
		return "localhost"
	}
	return host
}

func (e *environment) GetRedisPort() int {
	portStr := os.Getenv(e.RedisPort)
	if portStr == "" {
		return 6379
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		environmentLogger.Error().Msgf("Invalid Redis port %s", portStr)
		return 6379
	}
	return portNum
}

func (e *environment) GetRedisPW() string {
	return os.Getenv(e.RedisPW)
}

func (e *environment) GetRedisDB() int {
	dbStr := os.Getenv(e.RedisDB)
	if dbStr == "" {
		return 0
	}
	dbNum, err := strconv.Atoi(dbStr)
	if err != nil {
		environmentLogger.Error().Msgf("Invalid Redis db %s", dbStr)
		return 0
	}
	return dbNum
}

func (e *environment) ShouldPrintStateMsg() bool {
	v := os.Getenv(e.PrintStateMsg)
	return v == "1" || strings.ToLower(v) == "true"
}

func (e *environment) GetZeroLogLogLevel() zerolog.Level {
	l := os.Getenv(e.LogLevel)
	switch strings.ToLower(l) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
