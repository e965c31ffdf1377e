// Command main runs the database seeder for Lingua.
package main

import (
	"flag"
	"log"

	"lingua/internal/config"
	"lingua/internal/database"
	"lingua/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numTopics := flag.Int("topics", 10, "Number of plaza topics to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d topics, clean=%v\n", *numUsers, *numTopics, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(database.DB, seed.Options{
		NumUsers:    *numUsers,
		NumTopics:   *numTopics,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! All test users have the password: password123")
}
