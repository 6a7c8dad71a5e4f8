package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/papermapper/papermapper/internal/config"
	"github.com/papermapper/papermapper/internal/database"
	"github.com/papermapper/papermapper/internal/env"
	"github.com/papermapper/papermapper/internal/filestorage"
	"github.com/papermapper/papermapper/internal/mailer"
	"github.com/papermapper/papermapper/internal/queue"
	"github.com/papermapper/papermapper/internal/repository"
	"github.com/papermapper/papermapper/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

const (
	MAX_WORKER = 3
)

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	s3, err := filestorage.NewMinioClient(&cfg.Storage)
	if err != nil {
		logger.Error("Error connecting to object storage")
		logger.Panic(err)
	}
	storage := filestorage.NewR2Storage(s3, &cfg.Storage, logger)

	var mail mailer.Client
	if cfg.Mail.SEND_GRID.API_KEY != "" {
		mail = mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	} else {
		mail = mailer.NewGmailMailer(cfg.Mail.SMTP.USERNAME, cfg.Mail.SMTP.PASSWORD, logger)
	}

	repo := repository.NewRepository(db, logger, storage)
	app := queue.MailConsumerContext{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.Queue.AMQP_URL)
	if err != nil {
		logger.Panic("Error connecting to RabbitMQ: ", err)
	}
	logger.Info("RabbitMQ connected \n")
	defer func() {
		if err := rabbitMQ.Close(); err != nil {
			logger.Errorf("Failed to close RabbitMQ connection: %v", err)
		}
	}()

	ctx := context.Background()

	if err := rabbitMQ.ConsumeMailJob(ctx, mailJobHandler, MAX_WORKER, &app); err != nil {
		logger.Fatalf("Failed to consume mail job: %v", err)
	}

	logger.Infof("Started consuming mail job")

	// Block forever to keep the consumer running
	select {}
}

func mailJobHandler(ctx context.Context, jobPayload queue.MailJobPayload, app *queue.MailConsumerContext) (bool, error) {
	switch jobPayload.TemplateFile {
	case mailer.RESET_PASSWORD_TEMPLATE:
		var data mailer.ResetPasswordData
		if err := json.Unmarshal(jobPayload.Data, &data); err != nil {
			return false, fmt.Errorf("failed to unmarshal ResetPasswordData: %w", err)
		}

		// Codes expire; a stale job for a burned code still sends, the
		// validate endpoint is what rejects it.
		status, err := app.Mailer.Send(jobPayload.TemplateFile, data.Email, jobPayload.ToEmail, data)
		if err != nil {
			return true, fmt.Errorf("failed to send email: %w", err)
		}

		if status != http.StatusOK && status != http.StatusAccepted {
			return true, fmt.Errorf("email sending failed with status: %d", status)
		}

		return true, nil
	default:
		return false, fmt.Errorf("unsupported template: %s", jobPayload.TemplateFile)
	}
}
