package residents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	authHelper "aptfee_backend/internals/features/users/auth/helper"
	"aptfee_backend/internals/features/users/residents/model"
	"aptfee_backend/internals/features/users/residents/repository"
	helper "aptfee_backend/internals/helpers"
)

type ResidentSeed struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedAdmin makes sure one admin account exists. It is a no-op when the email is taken.
func SeedAdmin(db *gorm.DB, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, nil
	}
	return seedOne(db, ResidentSeed{FullName: "Administrator", Email: email, Password: password, Role: constants.RoleAdmin})
}

func SeedResidentsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("[SEED] reading residents:", filePath)
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var inputs []ResidentSeed
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	created := 0
	for _, in := range inputs {
		ok, err := seedOne(db, in)
		if err != nil {
			log.Printf("[SEED] skip %s: %v", in.Email, err)
			continue
		}
		if ok {
			created++
		}
	}
	log.Printf("[SEED] residents: %d created, %d skipped", created, len(inputs)-created)
	return nil
}

func seedOne(db *gorm.DB, in ResidentSeed) (bool, error) {
	ctx := context.Background()
	email := strings.ToLower(strings.TrimSpace(in.Email))

	_, err := repository.FindByEmail(ctx, db, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, helper.ErrResidentNotExisted) {
		return false, err
	}

	hash, err := authHelper.HashPassword(in.Password)
	if err != nil {
		return false, err
	}
	role := strings.ToLower(strings.TrimSpace(in.Role))
	if role == "" {
		role = constants.RoleResident
	}
	r := &model.Resident{
		FullName: strings.TrimSpace(in.FullName),
		Email:    email,
		Phone:    strings.TrimSpace(in.Phone),
		Password: hash,
		Role:     role,
	}
	if err := repository.Create(ctx, db, r); err != nil {
		if errors.Is(err, helper.ErrResidentExisted) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
