package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/novaclothing/novabackend/controllers"
	"github.com/novaclothing/novabackend/database"
	"github.com/novaclothing/novabackend/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// The service starts even without a database; handlers answer
	// "Database not configured" and /test reports the details.
	store, err := database.Open()
	if err != nil {
		log.Printf("Database unavailable: %v", err)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig()))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Nova Clothing API is running"})
	})
	r.GET("/test", controllers.TestDatabase(store))

	api := r.Group("/api")
	{
		api.GET("/products", controllers.ListProducts(store))
		api.POST("/products", controllers.CreateProduct(store))
		api.GET("/products/:id", controllers.GetProduct(store))
		api.POST("/orders", controllers.CreateOrder(store))
		api.GET("/seed", controllers.SeedProducts(store))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// corsConfig allows the origins listed in ALLOWED_ORIGINS, or any origin
// when the variable is unset.
func corsConfig() cors.Config {
	allowed := map[string]bool{}
	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed[origin] = true
		}
	}

	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowed) > 0 {
		cfg.AllowOriginFunc = func(origin string) bool { return allowed[origin] }
	} else {
		cfg.AllowOriginFunc = func(string) bool { return true }
	}
	return cfg
}
