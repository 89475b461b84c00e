package env

import (
	"casino_sim/internal/config"
	"errors"
	"os"
)

const (
	redisAddrEnvName = "REDIS_ADDR"
)

type redisConfig struct {
	addr string
}

func NewRedisConfig() (config.RedisConfig, error) {
	addr := os.Getenv(redisAddrEnvName)
	if len(addr) == 0 {
		return nil, errors.New("redis addr not found")
	}

	return &redisConfig{
		addr: addr,
	}, nil
}

func (cfg *redisConfig) Addr() string {
	return cfg.addr
}
