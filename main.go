package main

import (
	"log"

	"Recipe-Blog-Backend/cmd/config"
	migration "Recipe-Blog-Backend/cmd/database/migrate"
	"Recipe-Blog-Backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed setting up app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
