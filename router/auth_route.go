package router

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"airline_admin_go/config"
	"airline_admin_go/controllers"
	"airline_admin_go/store"
)

// AuthRoutes mounts the credential flow. Accounts are a separate identity
// space from the "registers" CRUD resource and live in their own collection.
func AuthRoutes(r *gin.Engine, client *mongo.Client, cfg *config.Config) {
	accounts := store.NewMongoRecords(config.GetCollection(client, cfg.DBName, "accounts"))
	authController := controllers.NewAuthController(accounts, cfg)

	api := r.Group("/api")
	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)
}
