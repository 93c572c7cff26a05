package main

import (
	"go-erp-backend/internal/config"
	"go-erp-backend/internal/model"
	"go-erp-backend/pkg/database"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, relying on system env")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB(cfg.DSN())

	// 3. Find Admin
	var user model.User
	if err := db.Where("email = ?", cfg.AdminEmail).First(&user).Error; err != nil {
		logrus.Fatalf("User %s not found in database: %v", cfg.AdminEmail, err)
	}

	// 4. Hash new password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("Failed to hash password: %v", err)
	}

	// 5. Update and invalidate existing sessions
	updates := map[string]interface{}{
		"password":      string(hashedPassword),
		"token_version": "",
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		logrus.Fatalf("Failed to update password in DB: %v", err)
	}

	logrus.Infof("Password for %s has been reset", cfg.AdminEmail)
}
