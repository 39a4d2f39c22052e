package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/snackhub/catalog-backend/internal/app"
	config "github.com/snackhub/catalog-backend/internal/cfg"
	"github.com/snackhub/catalog-backend/pkg/logger"
)

// @title			Catalog Backend API
// @version		1.0
// @description	Сервис каталога продуктов
// @BasePath		/api/v1
func main() {
	log := logger.NewSlogLogger()

	if err := godotenv.Load(); err != nil {
		log.Infof("no .env file found, using environment variables")
	}

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
