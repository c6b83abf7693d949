package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/rayagrigorova/pawfinder/internal/models"
	"github.com/rayagrigorova/pawfinder/pkg/config"
)

// codegen mints a one-time registration code bound to a username, so that
// the matching shelter account can be registered.
func main() {
	username := flag.String("username", "", "username the code will be bound to (required)")
	code := flag.String("code", "", "code value; generated when empty")
	flag.Parse()

	if *username == "" {
		log.Fatal("codegen: -username is required")
	}
	if *code == "" {
		*code = uuid.NewString()
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	if err := db.Postgres.AutoMigrate(&models.RegistrationCode{}); err != nil {
		log.Fatalf("Failed to migrate registration codes: %v", err)
	}

	entry := models.RegistrationCode{Code: *code, Username: *username}
	if err := db.Postgres.Create(&entry).Error; err != nil {
		log.Fatalf("Failed to create registration code: %v", err)
	}

	fmt.Printf("registration code for %q: %s\n", *username, entry.Code)
}
