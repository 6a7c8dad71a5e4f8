package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	appcontext "github.com/papermapper/papermapper/internal/app_context"
	"github.com/papermapper/papermapper/internal/auth"
	"github.com/papermapper/papermapper/internal/config"
	"github.com/papermapper/papermapper/internal/controller"
	"github.com/papermapper/papermapper/internal/database"
	"github.com/papermapper/papermapper/internal/env"
	"github.com/papermapper/papermapper/internal/filestorage"
	"github.com/papermapper/papermapper/internal/mailer"
	"github.com/papermapper/papermapper/internal/middleware"
	"github.com/papermapper/papermapper/internal/queue"
	ratelimiter "github.com/papermapper/papermapper/internal/rate_limiter"
	"github.com/papermapper/papermapper/internal/repository"
	"github.com/papermapper/papermapper/internal/route"
	"github.com/papermapper/papermapper/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

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

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
		if err = v.RegisterValidation("cardtype", util.ValidCardType); err != nil {
			return
		}
		if err = v.RegisterValidation("cmin", util.CustomMin); err != nil {
			return
		}
		if err = v.RegisterValidation("cmax", util.CustomMax); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)

	var mail mailer.Client
	if cfg.Mail.SEND_GRID.API_KEY != "" {
		mail = mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	} else {
		mail = mailer.NewGmailMailer(cfg.Mail.SMTP.USERNAME, cfg.Mail.SMTP.PASSWORD, logger)
	}

	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, storage)

	// The mail queue is optional; without it reset emails go out inline.
	var mailQueue *queue.RabbitMQ
	if cfg.Queue.AMQP_URL != "" {
		mailQueue, err = queue.NewRabbitMQ(cfg.Queue.AMQP_URL)
		if err != nil {
			logger.Warnf("RabbitMQ unavailable, sending mail inline: %v", err)
			mailQueue = nil
		} else {
			logger.Info("RabbitMQ connected \n")
		}
	}

	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
		JWTService: jwtService,
		Storage:    storage,
		MailQueue:  mailQueue,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	// Session cookies do not cross origins without credentials.
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")

	route.V1_Auth(rApi, _controller.Auth)
	route.V1_Users(rApi, _controller.User, _middleware)
	route.V1_Projects(rApi, _controller.Project, _middleware)
	route.V1_Citations(rApi, _controller.Citation, _middleware)
	route.V1_SourceMaterials(rApi, _controller.SourceMaterial, _middleware)
	route.V1_Questions(rApi, _controller.Question, _middleware)
	route.V1_Insights(rApi, _controller.Insight, _middleware)
	route.V1_Thoughts(rApi, _controller.Thought, _middleware)
	route.V1_Claims(rApi, _controller.Claim, _middleware)
	route.V1_Cards(rApi, _controller.Card, _middleware)
	route.V1_CardLinks(rApi, _controller.CardLink, _middleware)
	route.V1_Outline(rApi, _controller.Outline, _middleware)
	route.V1_File(rApi, _controller.File, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panic("Error running server: %v \n", err)
	}
}
