// Command main runs the database seeder for Gardrop.
package main

import (
	"flag"
	"log"

	"gardrop/internal/config"
	"gardrop/internal/database"
	"gardrop/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numAdverts := flag.Int("adverts", 200, "Number of adverts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d users, %d adverts, clean=%v\n", *numUsers, *numAdverts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumAdverts:  *numAdverts,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All test users have the password: password123")
}
