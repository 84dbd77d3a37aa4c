package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/mdtreza/booking-api/internal/api"
	"github.com/mdtreza/booking-api/internal/infrastructure/config"
	mysqldb "github.com/mdtreza/booking-api/internal/infrastructure/db/mysql"
	redisdb "github.com/mdtreza/booking-api/internal/infrastructure/db/redis"
	"github.com/mdtreza/booking-api/pkg/logger"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log := logger.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := mysqldb.Open(ctx, mysqldb.Config{
		User: cfg.DB.User,
		Pass: cfg.DB.Pass,
		Host: cfg.DB.Host,
		Port: cfg.DB.Port,
		Name: cfg.DB.Name,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connection failed")
	}
	defer db.Close()

	if err := mysqldb.Sync(db); err != nil {
		log.Fatal().Err(err).Msg("schema sync failed")
	}
	log.Info().Str("database", cfg.DB.Name).Msg("schema synchronized")

	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis connection failed")
		}
		defer rdb.Close()
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	}

	e := api.NewRouter(cfg, db, rdb)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
