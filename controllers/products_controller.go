package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novaclothing/novabackend/database"
	"github.com/novaclothing/novabackend/dto"
	"github.com/novaclothing/novabackend/models"
	"github.com/novaclothing/novabackend/utils"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func ListProducts(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if !store.Available() {
			respondStoreUnavailable(c)
			return
		}

		search := utils.ProductSearch{
			Category: strings.TrimSpace(c.Query("category")),
			Query:    strings.TrimSpace(c.Query("q")),
		}
		limit := utils.ParseIntDefault(c.Query("limit"), defaultListLimit)
		if limit < 1 {
			limit = defaultListLimit
		}
		if limit > maxListLimit {
			limit = maxListLimit
		}

		products, err := database.Find[models.Product](ctx, store, database.ProductCollection, search.Filter(), int64(limit))
		if err != nil {
			respondStoreError(c, err)
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

func CreateProduct(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateProductDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			respondBindError(c, "product", err)
			return
		}

		if !store.Available() {
			respondStoreUnavailable(c)
			return
		}

		id, err := database.Insert(c.Request.Context(), store, database.ProductCollection, body.ToModel())
		if err != nil {
			respondStoreError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

func GetProduct(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := database.ID(c.Param("id"))

		product, err := database.FindByID[models.Product](c.Request.Context(), store, database.ProductCollection, id)
		if err != nil {
			switch {
			case errors.Is(err, database.ErrInvalidID):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			case errors.Is(err, database.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case errors.Is(err, database.ErrUnavailable):
				respondStoreUnavailable(c)
			default:
				respondStoreError(c, err)
			}
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
