package main

import (
	"context"
	"log"
	"time"

	"scene-backend/config"
	"scene-backend/internal/handler"
	"scene-backend/internal/repository"
	"scene-backend/internal/server"
	"scene-backend/internal/services"
	"scene-backend/pkg/database"
	"scene-backend/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	defer l.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	l.Infof("Connecting to MongoDB...")
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			l.Errorf("Error closing database connection: %s", err)
		}
	}()
	l.Infof("MongoDB connection initialized successfully")

	userRepo := repository.NewUserRepository(db.Users())
	chatRepo := repository.NewChatRepository(db.Chats())

	authService := services.NewAuthService(userRepo, cfg)
	chatService := services.NewChatService(chatRepo)

	handlers := &server.Handlers{
		Auth: handler.NewAuthHandler(authService, l),
		Chat: handler.NewChatHandler(chatService, l),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, authService, db)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
