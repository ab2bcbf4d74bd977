package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"airline_admin_go/config"
	"airline_admin_go/middlewares"
	"airline_admin_go/router"
)

func main() {
	cfg := config.Load()

	client := config.ConnectDB(cfg.MongoURI)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middlewares.CORS())

	router.ResourceRoutes(r, client, cfg.DBName)
	router.AuthRoutes(r, client, cfg)

	logrus.WithField("port", cfg.Port).Info("airline admin API listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
