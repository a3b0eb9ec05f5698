// Package main provides a maintenance tool for the catalogue database.
//
// By default it ensures an admin account exists, creating one with the
// given credentials when none is found. With --reset-books it also marks
// every book as available, for use between lending periods.
//
// Usage:
//
//	go run ./cmd/seed --email admin@example.com --password secret-password
//	go run ./cmd/seed --reset-books
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/yoofibh/webtech-dlc/internal/auth"
	"github.com/yoofibh/webtech-dlc/internal/domain"
	"github.com/yoofibh/webtech-dlc/internal/store/sqlite"
)

var (
	dataPath   = flag.String("data-path", "", "Data directory (default: DATA_PATH env or ~/library-catalogue)")
	name       = flag.String("name", "Administrator", "Admin display name")
	email      = flag.String("email", "", "Admin email address")
	password   = flag.String("password", "", "Admin password")
	resetBooks = flag.Bool("reset-books", false, "Mark every book as available")
)

func main() {
	flag.Parse()

	dir := *dataPath
	if dir == "" {
		dir = os.Getenv("DATA_PATH")
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Resolve home directory: %v", err)
		}
		dir = filepath.Join(home, "library-catalogue")
	}

	dbPath := filepath.Join(dir, "catalogue.db")
	fmt.Printf("Opening database at: %s\n", dbPath)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	s, err := sqlite.Open(dbPath, logger)
	if err != nil {
		log.Fatalf("Open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	if *resetBooks {
		n, err := s.ResetBookStatuses(ctx)
		if err != nil {
			log.Fatalf("Reset book statuses: %v", err)
		}
		fmt.Printf("Reset done: %d books set to available\n", n)
	}

	hasAdmin, err := s.HasAdmin(ctx)
	if err != nil {
		log.Fatalf("Check for admin: %v", err)
	}
	if hasAdmin {
		fmt.Println("Admin already exists, skipping admin seed")
		return
	}

	if *email == "" || *password == "" {
		log.Fatal("No admin exists; --email and --password are required to create one")
	}

	passwordHash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("Hash password: %v", err)
	}

	admin := &domain.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: passwordHash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := s.CreateUser(ctx, admin); err != nil {
		log.Fatalf("Create admin: %v", err)
	}

	fmt.Printf("Seed admin created: %s (id %d)\n", admin.Email, admin.ID)
}
