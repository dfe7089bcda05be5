package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novaclothing/novabackend/database"
	"github.com/novaclothing/novabackend/dto"
)

func CreateOrder(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateOrderDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			respondBindError(c, "order", err)
			return
		}

		if !store.Available() {
			respondStoreUnavailable(c)
			return
		}

		id, err := database.Insert(c.Request.Context(), store, database.OrderCollection, body.ToModel())
		if err != nil {
			respondStoreError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}
