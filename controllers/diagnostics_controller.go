package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/novaclothing/novabackend/database"
	"github.com/novaclothing/novabackend/utils"
)

// TestDatabase reports store and configuration health. Every failure state
// is encoded in the body; the endpoint itself always answers 200 so the
// frontend can render it.
func TestDatabase(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      envStatus("DATABASE_URL"),
			"database_name":     envStatus("DATABASE_NAME"),
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if store.Available() {
			response["database"] = "✅ Available"
			response["connection_status"] = "Connected"

			names, err := store.ListCollections(c.Request.Context())
			if err != nil {
				response["database"] = "⚠️ Connected but Error: " + utils.Truncate(err.Error(), 50)
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
				response["database"] = "✅ Connected & Working"
			}
		}

		c.JSON(http.StatusOK, response)
	}
}

// envStatus reports presence only, never the value.
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}
