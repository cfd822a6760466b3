package seeds

import (
	"log"

	"gorm.io/gorm"

	"aptfee_backend/internals/configs"
	"aptfee_backend/internals/seeds/residents"
)

func RunAllSeeds(db *gorm.DB, cfg configs.Config) {
	//* Admin bootstrap
	if created, err := residents.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("[SEED] admin: %v", err)
	} else if created {
		log.Printf("[SEED] admin %s created", cfg.AdminEmail)
	}

	//* Residents
	if path := configs.GetEnv("SEED_RESIDENTS_FILE"); path != "" {
		if err := residents.SeedResidentsFromJSON(db, path); err != nil {
			log.Printf("[SEED] residents: %v", err)
		}
	}
}
