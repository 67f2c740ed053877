package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dkovac/pagecraft-api/internal/config"
	"github.com/dkovac/pagecraft-api/internal/services"
	"github.com/google/uuid"
)

// Mints a short-lived editor token for local development, where no external
// identity service is around to issue one.
func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: issue-token <email>")
		os.Exit(1)
	}

	email := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry)

	token, err := jwtService.GenerateAccessToken(uuid.New(), email)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(token)
}
