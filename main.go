package main

import (
	"fmt"
	"log"

	"tokomember-backend/config"
	"tokomember-backend/routes"
	"tokomember-backend/services"
	"tokomember-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	dataStore := store.New()
	dataStore.Seed()

	if cfg.EnableScheduler {
		birthdayService := services.NewBirthdayService(dataStore)
		birthdayService.StartScheduler()
	}

	r := routes.SetupRouter(dataStore)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
