package main

import (
	"log"

	api "portfolio-backend/cmd/api"
	contactdomain "portfolio-backend/internal/contact/domain"
	contactRepo "portfolio-backend/internal/contact/repository"
	"portfolio-backend/pkg/config"
	"portfolio-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database. The server still starts without one; the contact
	// endpoint then answers with a storage error instead of crashing at boot.
	var inquiryRepo contactRepo.InquiryRepository
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Printf("[WARN] Database unavailable, contact submissions will fail: %v", err)
	} else {
		if err := db.AutoMigrate(&contactdomain.Inquiry{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		inquiryRepo = contactRepo.NewGormInquiryRepository(db)
	}

	// Initialize HTTP handler
	handler := api.NewHandler(inquiryRepo, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
