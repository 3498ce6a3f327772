package config

import (
	"log"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

type StoreConfig struct {
	CandidatesFile string `envconfig:"CANDIDATES_FILE" default:"data/candidates.xlsx"`
	BackupDir      string `envconfig:"BACKUP_DIR" default:"data/backups"`
	Sheet          string `envconfig:"CANDIDATES_SHEET" default:"Sheet1"`
}

var (
	storeConfig *StoreConfig
	storeOnce   sync.Once
)

func LoadStoreConfig() *StoreConfig {
	storeOnce.Do(func() {
		storeConfig = new(StoreConfig)
		if err := envconfig.Process("", storeConfig); err != nil {
			log.Printf("Warning: invalid store configuration, using defaults: %v", err)
			storeConfig = &StoreConfig{CandidatesFile: "data/candidates.xlsx", BackupDir: "data/backups", Sheet: "Sheet1"}
		}
	})
	return storeConfig
}
