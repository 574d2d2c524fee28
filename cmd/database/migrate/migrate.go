package migration

import (
	"fmt"
	"log"

	"Recipe-Blog-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Review{}); err != nil {
		log.Fatalf("Error migrating review database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Media{}); err != nil {
		log.Fatalf("Error migrating media database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.AdminUser{}); err != nil {
		log.Fatalf("Error migrating admin user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InstagramWebhookLog{}); err != nil {
		log.Fatalf("Error migrating instagram webhook log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NewsletterSubscriber{}); err != nil {
		log.Fatalf("Error migrating newsletter subscriber database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
