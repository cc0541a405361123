package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/varmintworks/varmint-server/internal/database"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	// Construct connection string
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	dbPool, err := database.NewPool(connString, 2, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	// Dump accounts with their progress scalars
	fmt.Println("--- Accounts ---")
	rows, err := dbPool.Query(ctx, `
		SELECT a.account_id, a.username, p.tutorial_completed, p.currency
		FROM accounts a
		JOIN progress p ON p.progress_id = a.account_id
		ORDER BY a.account_id
	`)
	if err != nil {
		log.Printf("Failed to query accounts: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id int64
			var username string
			var tutorialCompleted bool
			var currency int
			if err := rows.Scan(&id, &username, &tutorialCompleted, &currency); err != nil {
				log.Printf("Failed to scan account: %v", err)
			}
			fmt.Printf("ID: %d, Username: %s, Tutorial: %v, Currency: %d\n", id, username, tutorialCompleted, currency)
		}
	}

	// Dump pets per account
	fmt.Println("\n--- Pets ---")
	rows, err = dbPool.Query(ctx, `
		SELECT pet_id, progress_id, pet_name, pet_level, evolution_stage, evolution_line
		FROM pets
		ORDER BY progress_id, pet_id
	`)
	if err != nil {
		log.Printf("Failed to query pets: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id, progressID int64
			var name string
			var level, stage, line int
			if err := rows.Scan(&id, &progressID, &name, &level, &stage, &line); err != nil {
				log.Printf("Failed to scan pet: %v", err)
			}
			fmt.Printf("ID: %d, Owner: %d, Name: %s, Level: %d, Evolution: [%d, %d]\n", id, progressID, name, level, stage, line)
		}
	}

	// Dump per-account record counts
	fmt.Println("\n--- Record Counts ---")
	query := `
		SELECT a.account_id, a.username,
			(SELECT COUNT(*) FROM pets WHERE progress_id = a.account_id),
			(SELECT COUNT(*) FROM home_objects WHERE progress_id = a.account_id),
			(SELECT COUNT(*) FROM inventory_entries WHERE progress_id = a.account_id)
		FROM accounts a
		ORDER BY a.account_id
	`
	rows, err = dbPool.Query(ctx, query)
	if err != nil {
		log.Printf("Failed to query record counts: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id int64
			var username string
			var pets, objects, entries int
			if err := rows.Scan(&id, &username, &pets, &objects, &entries); err != nil {
				log.Printf("Failed to scan counts: %v", err)
			}
			fmt.Printf("Account: %d (%s), Pets: %d, HomeObjects: %d, Inventory: %d\n", id, username, pets, objects, entries)
		}
	}
}
