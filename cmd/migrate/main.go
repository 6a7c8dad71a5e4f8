package main

import (
	"github.com/papermapper/papermapper/internal/config"
	"github.com/papermapper/papermapper/internal/database"
	"github.com/papermapper/papermapper/internal/env"
	"github.com/papermapper/papermapper/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	// Case-insensitive unique emails.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`)

	migrateErr := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Citation{},
		&model.SourceMaterial{},
		&model.Question{},
		&model.Insight{},
		&model.Thought{},
		&model.Claim{},
		&model.Card{},
		&model.CardLink{},
		&model.OutlineSection{},
		&model.OutlineCardPlacement{},
		&model.UserCustomOption{},
		&model.PasswordResetCode{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}
}
