package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"airline_admin_go/store"
)

// ResourceController serves the four handlers every admin resource shares:
// list, create, update and delete. T is the resource schema; keyField is the
// bson name of the caller-assigned identity ("id", or "checkId" for
// check-ins) that update and delete read from the request body.
//
// Create persists unconditionally: fields absent from the body are stored as
// their zero values, and no duplicate check is made on the key. With
// duplicate keys present, update and delete act on the first match in store
// order and report the matched/deleted count; zero matches is a success.
type ResourceController[T any] struct {
	records  store.Records
	keyField string
}

func NewResourceController[T any](records store.Records, keyField string) *ResourceController[T] {
	return &ResourceController[T]{records: records, keyField: keyField}
}

func storeCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func (rc *ResourceController[T]) List(c *gin.Context) {
	ctx, cancel := storeCtx()
	defer cancel()

	records, err := rc.records.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": records})
}

func (rc *ResourceController[T]) Create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	if _, err := rc.records.Insert(ctx, record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": record})
}

func (rc *ResourceController[T]) Update(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Whole-record replacement: every declared field except the key is $set,
	// zero values included.
	raw, err := bson.Marshal(record)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	key := fields[rc.keyField]
	delete(fields, rc.keyField)

	ctx, cancel := storeCtx()
	defer cancel()

	matched, err := rc.records.UpdateFirst(ctx, rc.keyField, key, fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": gin.H{"matched": matched}})
}

func (rc *ResourceController[T]) Delete(c *gin.Context) {
	var body bson.M
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	deleted, err := rc.records.DeleteFirst(ctx, rc.keyField, body[rc.keyField])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": gin.H{"deleted": deleted}})
}
