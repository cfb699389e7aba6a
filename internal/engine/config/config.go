package config

import (
	"fmt"
	"sync"

	"github.com/go-atlas/atlas/pkg/cache"
	"github.com/go-atlas/atlas/pkg/conf"
	"github.com/go-atlas/atlas/pkg/database"
	"github.com/go-atlas/atlas/pkg/http"
	"github.com/go-atlas/atlas/pkg/log"
)

type AppConfig struct {
	Log      log.Conf
	Http     http.Http
	Database database.Database
	Redis    cache.Redis
}

var (
	cfg  AppConfig
	once sync.Once
)

func NewConf(confDir string) AppConfig {
	once.Do(func() {
		if err := conf.LoadConfigFile(confDir, &cfg); err != nil {
			panic(fmt.Sprintf("load config file error: %s", err))
		}
	})
	return cfg
}
