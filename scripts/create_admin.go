// scripts/create_admin.go
//
// Seeds the bootstrap admin account; a fresh deployment has no admin to
// create other users with. Run with:
//
//	go run ./scripts
package main

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/radipleven/school-gradebook-project/config"
	"github.com/radipleven/school-gradebook-project/database"
	"github.com/radipleven/school-gradebook-project/models"
)

func main() {
	cfg := config.Load()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	email := "admin@school.local"
	password := "admin"

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Println("admin user already exists:", email)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to query users: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u := models.User{
		Email:     email,
		Password:  string(hashed),
		Role:      models.RoleAdmin,
		FirstName: "Admin",
		LastName:  "Admin",
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("admin user created")
	fmt.Println("   email:", email)
	fmt.Println("   password:", password, "(change it after first login)")
}
