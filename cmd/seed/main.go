package main

import (
	"context"
	"log"

	"webtime/internal/category"
	"webtime/internal/config"
	"webtime/internal/db"
	"webtime/internal/model"
	"webtime/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.MySQLDSN, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.WebsiteCategory{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	entries := category.Default().Entries()
	records := make([]model.WebsiteCategory, 0, len(entries))
	for domain, cat := range entries {
		records = append(records, model.WebsiteCategory{
			Domain:    domain,
			Category:  cat,
			IsDefault: true,
		})
	}

	categoryRepo := repository.NewWebsiteCategoryRepository(gormDB)
	if err := categoryRepo.SeedDefaults(context.Background(), records); err != nil {
		log.Fatalf("Failed to seed default categories: %v", err)
	}

	log.Printf("Seed completed successfully, %d default categories ensured", len(records))
}
