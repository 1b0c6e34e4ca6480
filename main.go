package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"portfolioapi/config"
	"portfolioapi/database"
	"portfolioapi/handlers"
	repository "portfolioapi/repositories"
	routes "portfolioapi/routes"
	services "portfolioapi/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		if err := database.Disconnect(context.TODO()); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	fmt.Println("Successfully connected to MongoDB!")

	db := client.Database(cfg.Mongo.Database)

	if err := database.CreateIndexes(db); err != nil {
		log.Printf("Warning: Failed to create indexes: %v", err)
	}

	// Repositories
	projectRepo := repository.NewProjectRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	experienceRepo := repository.NewExperienceRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Services
	emailSender := services.NewSMTPSender(cfg.Email)
	imageService, err := services.NewImageService(cfg.Cloudinary)
	if err != nil {
		log.Fatal("Failed to initialize image service:", err)
	}

	h := routes.Handlers{
		Project:     handlers.NewProjectHandler(services.NewProjectService(projectRepo)),
		Skill:       handlers.NewSkillHandler(services.NewSkillService(skillRepo)),
		Experience:  handlers.NewExperienceHandler(services.NewExperienceService(experienceRepo)),
		Achievement: handlers.NewAchievementHandler(services.NewAchievementService(achievementRepo)),
		Contact:     handlers.NewContactHandler(services.NewContactService(contactRepo, emailSender, cfg.Email.Blocking)),
		Auth:        handlers.NewAuthHandler(services.NewAuthService(cfg.Auth)),
		Image:       handlers.NewImageHandler(imageService),
	}

	mux := routes.SetupRoutes(h, cfg.Auth.JWTSecret)

	fmt.Printf("Server starting on port %s\n", cfg.Server.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, mux))
}
