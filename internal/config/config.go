package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

// StoreConfig Выбор бэкенда хранилища аккаунтов: file, redis или postgres
type StoreConfig interface {
	Backend() string
	LedgerPath() string
}

type RedisConfig interface {
	Addr() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
