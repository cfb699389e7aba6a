// Copyright 2025 Atlas Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-atlas/atlas/internal/engine/config"
	"github.com/go-atlas/atlas/internal/engine/repo"
	"github.com/go-atlas/atlas/internal/engine/router"
	"github.com/go-atlas/atlas/internal/engine/service"
	"github.com/go-atlas/atlas/pkg/cache"
	"github.com/go-atlas/atlas/pkg/ctx"
	"github.com/go-atlas/atlas/pkg/database"
	"github.com/go-atlas/atlas/pkg/log"
)

var configDir string

func init() {
	flag.StringVar(&configDir, "conf", "conf.d", "conf directory, e.g. -conf ./conf.d")
}

func main() {
	flag.Parse()

	appConf := config.NewConf(configDir)

	log.MustInit(&appConf.Log)
	logger := log.GetLogger()
	defer func() {
		_ = logger.Sync()
	}()

	rdb, err := cache.NewRedis(appConf.Redis)
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}
	redisCache := cache.NewRedisCache(rdb)

	gormDB, err := database.NewDatabase(appConf.Database)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	db := database.NewGormDB(gormDB)

	appCtx := ctx.NewContext(context.Background(), gormDB, rdb, redisCache, logger)

	repos := repo.NewRepositories(db, redisCache)
	services := service.NewServices(repos, redisCache)

	rt := router.NewRouter(&appConf.Http, appCtx, repos, services)
	app := rt.Router()

	addr := fmt.Sprintf("%s:%d", appConf.Http.Host, appConf.Http.Port)
	go func() {
		var err error
		if appConf.Http.TLS.CertFile != "" && appConf.Http.TLS.KeyFile != "" {
			err = app.ListenTLS(addr, appConf.Http.TLS.CertFile, appConf.Http.TLS.KeyFile)
		} else {
			err = app.Listen(addr)
		}
		if err != nil {
			log.Fatalf("http server: %v", err)
		}
	}()
	log.Infof("atlas listening on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	if err := app.ShutdownWithTimeout(time.Duration(appConf.Http.ShutdownTimeout) * time.Second); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
