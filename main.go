package main

import (
	"context"
	"fmt"

	"readlog/config"
	"readlog/di"
	"readlog/driver/readlog_db"
	"readlog/rest"
	"readlog/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.InitLogger()
	log.Info("starting server", "port", cfg.Server.Port)

	pool, err := readlog_db.InitDBPool(context.Background(), cfg)
	if err != nil {
		logger.SafeError("failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	rest.RegisterRoutes(e, container, cfg)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.SafeError("server stopped", "error", err)
		panic(err)
	}
}
