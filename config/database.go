package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/studyplanner/planner-api/models"
)

var Database *gorm.DB

// Connect opens the shared database handle and migrates the schema. Postgres
// is used when DB_URL is set; otherwise a local SQLite file for development.
func Connect() error {
	var err error
	if Env.DatabaseURL != "" {
		Database, err = gorm.Open(postgres.Open(Env.DatabaseURL), &gorm.Config{})
	} else {
		Database, err = gorm.Open(sqlite.Open("planner.db"), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}

	err = Database.AutoMigrate(&models.User{}, &models.Board{}, &models.Card{})
	if err != nil {
		panic("failed to auto migrate database")
	}

	return nil
}
