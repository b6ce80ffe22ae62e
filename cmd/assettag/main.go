package main

import (
	"os"

	v1 "go_assettag/api/v1"
	"go_assettag/internal/auth"
	"go_assettag/internal/cache"
	"go_assettag/internal/config"
	"go_assettag/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 1. Load configuration (INI file with env override, or env only)
	var cfg *config.Config
	var err error
	if iniPath := os.Getenv("CONFIG_INI"); iniPath != "" {
		cfg, err = config.LoadFromINI(iniPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	auth.InitJWT(cfg.JWT.Secret)

	// 2. Initialize MySQL
	if err := db.InitMySQL(cfg.MySQL.DSN); err != nil {
		logrus.WithError(err).Fatal("failed to initialize MySQL")
	}
	defer db.Close()

	if cfg.Migrate {
		if err := db.Migrate(db.Get()); err != nil {
			logrus.WithError(err).Fatal("failed to migrate database")
		}
	}

	// 3. Initialize Redis (token denylist)
	if err := cache.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		logrus.WithError(err).Fatal("failed to initialize Redis")
	}
	defer cache.Close()

	// 4. Initialize Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	v1.SetupRouter(r, db.Get(), cfg)

	logrus.Infof("server starting on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
