package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"airline_admin_go/config"
	"airline_admin_go/controllers"
	"airline_admin_go/models"
	"airline_admin_go/store"
)

// ResourceRoutes mounts the list/create/update/delete quadruplet for each of
// the eight admin resources under /api. Update and delete take the record
// key from the request body, not the path; that is the contract the admin UI
// was built against.
func ResourceRoutes(r *gin.Engine, client *mongo.Client, db string) {
	api := r.Group("/api")

	mount[models.User](api, client, db, "users", "users", "user", "id", false)
	mount[models.Booking](api, client, db, "bookings", "bookings", "booking", "id", false)
	mount[models.Passenger](api, client, db, "passengers", "passengers", "passenger", "id", false)
	mount[models.Payment](api, client, db, "payments", "payments", "payment", "id", false)
	mount[models.Register](api, client, db, "registers", "registers", "register", "id", true)
	mount[models.Schedule](api, client, db, "schedules", "schedules", "schedule", "id", false)
	mount[models.Staff](api, client, db, "staffs", "staffs", "staff", "id", false)
	mount[models.Check](api, client, db, "checks", "checks", "check", "checkId", true)
}

func mount[T any](api *gin.RouterGroup, client *mongo.Client, db, collection, plural, singular, keyField string, unique bool) {
	records := store.NewMongoRecords(config.GetCollection(client, db, collection))

	if unique {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := records.EnsureUniqueIndex(ctx, keyField); err != nil {
			logrus.WithError(err).WithField("collection", collection).Warn("unique index not created")
		}
	}

	rc := controllers.NewResourceController[T](records, keyField)

	api.GET("/"+plural, rc.List)
	api.POST("/create"+singular, rc.Create)
	api.POST("/update"+singular, rc.Update)
	api.POST("/delete"+singular, rc.Delete)
}
