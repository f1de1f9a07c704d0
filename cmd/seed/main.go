package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-profile-auth/config"
	"github.com/oksasatya/go-profile-auth/internal/domain/entity"
	"github.com/oksasatya/go-profile-auth/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	hasher := helpers.NewPasswordHasher(cfg.BcryptCost, helpers.NewLogger(cfg.AppName, cfg.Env))

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := entity.NormalizeEmail("demo@example.com")
	password := "password123"
	name := "Demo User"
	hash, err := hasher.Hash(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	// reruns reset the credentials so the printed passwords always work
	var accountID string
	err = db.QueryRow(`
		INSERT INTO accounts (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (lower(email)) DO UPDATE
		SET name = EXCLUDED.name, password_hash = EXCLUDED.password_hash, google_id = NULL, updated_at = now()
		RETURNING id
	`, name, email, hash).Scan(&accountID)
	if err != nil {
		log.Fatalf("failed to seed account: %v", err)
	}
	fmt.Printf("seeded account: id=%s email=%s password=%s\n", accountID, email, password)

	username := "demo"
	profilePassword := "profile123"
	profileHash, err := hasher.Hash(profilePassword)
	if err != nil {
		log.Fatalf("failed to hash profile password: %v", err)
	}

	// Profile copies the account's name and email, as CreateProfile does
	var profileID string
	err = db.QueryRow(`
		INSERT INTO profiles (account_id, username, password_hash, name, email)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO UPDATE
		SET account_id = EXCLUDED.account_id, password_hash = EXCLUDED.password_hash, updated_at = now()
		RETURNING id
	`, accountID, username, profileHash, name, email).Scan(&profileID)
	if err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}
	fmt.Printf("seeded profile: id=%s username=%s password=%s\n", profileID, username, profilePassword)
}
