package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novaclothing/novabackend/utils"
)

// respondBindError maps a binding failure to a 400, with per-field detail
// when the validator produced any.
func respondBindError(c *gin.Context, resource string, err error) {
	if fields := utils.FieldErrors(err); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid " + resource + " payload",
			"fields": fields,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func respondStoreUnavailable(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not configured"})
}

func respondStoreError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": utils.Truncate(err.Error(), 50)})
}
