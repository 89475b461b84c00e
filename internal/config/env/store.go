package env

import (
	"casino_sim/internal/config"
	"fmt"
	"os"
)

const (
	storeBackendEnvName = "STORE_BACKEND"
	ledgerPathEnvName   = "LEDGER_PATH"

	// Бэкенд по умолчанию - локальный файловый блоб
	defaultBackend    = "file"
	defaultLedgerPath = "casino_users.json"
)

type storeConfig struct {
	backend    string
	ledgerPath string
}

func NewStoreConfig() (config.StoreConfig, error) {
	backend := os.Getenv(storeBackendEnvName)
	if len(backend) == 0 {
		backend = defaultBackend
	}

	switch backend {
	case "file", "redis", "postgres":
	default:
		return nil, fmt.Errorf("unknown store backend: %s", backend)
	}

	ledgerPath := os.Getenv(ledgerPathEnvName)
	if len(ledgerPath) == 0 {
		ledgerPath = defaultLedgerPath
	}

	return &storeConfig{
		backend:    backend,
		ledgerPath: ledgerPath,
	}, nil
}

func (cfg *storeConfig) Backend() string {
	return cfg.backend
}

func (cfg *storeConfig) LedgerPath() string {
	return cfg.ledgerPath
}
