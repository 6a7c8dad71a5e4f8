package appcontext

import (
	"github.com/papermapper/papermapper/internal/auth"
	"github.com/papermapper/papermapper/internal/config"
	"github.com/papermapper/papermapper/internal/filestorage"
	"github.com/papermapper/papermapper/internal/mailer"
	"github.com/papermapper/papermapper/internal/queue"
	"github.com/papermapper/papermapper/internal/repository"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	// Logger lol....
	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// JWTService manages session token operations such as generate, verify.
	JWTService auth.JWTInterface

	// Storage serves uploads and deletes against the R2 bucket.
	Storage *filestorage.R2Storage

	// MailQueue is nil when AMQP is not configured; reset emails are then
	// sent inline.
	MailQueue *queue.RabbitMQ
}
