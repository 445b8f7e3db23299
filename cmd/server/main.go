package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cooking/internal/cache"
	"cooking/internal/config"
	"cooking/internal/db"
	"cooking/internal/handler"
	"cooking/internal/repository"
	"cooking/internal/router"
	"cooking/internal/service"
)

func main() {
	cfg := config.Load()

	e := echo.New()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongodb init: %v (check that the server at %s is running)", err, cfg.MongoURI)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("mongodb disconnect: %v", err)
		}
	}()

	database := client.Database(cfg.MongoDB)
	if err := db.EnsureCollections(ctx, database, "users", "recipes"); err != nil {
		log.Fatalf("ensure collections: %v", err)
	}
	log.Println("Database connected")

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(database)
	recipeRepo := repository.NewRecipeRepository(database)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient)
	recipeService := service.NewRecipeService(recipeRepo, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	// Register routes
	router.Register(e, cfg, userHandler, recipeHandler)

	addr := ":" + cfg.ServerPort
	log.Printf("Cooking Recipes API is listening on %s", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
