package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	adminapp "github.com/ayoubkd/party-membership/application/admin"
	contentapp "github.com/ayoubkd/party-membership/application/content"
	memberapp "github.com/ayoubkd/party-membership/application/member"
	otpapp "github.com/ayoubkd/party-membership/application/otp"
	"github.com/ayoubkd/party-membership/cmd/config"
	redisclient "github.com/ayoubkd/party-membership/cmd/redis"
	_ "github.com/ayoubkd/party-membership/docs"
	adminRepo "github.com/ayoubkd/party-membership/repository/admin"
	contentRepo "github.com/ayoubkd/party-membership/repository/content"
	eventRepo "github.com/ayoubkd/party-membership/repository/event"
	memberRepo "github.com/ayoubkd/party-membership/repository/member"
	otpRepo "github.com/ayoubkd/party-membership/repository/otp"
	redisRepo "github.com/ayoubkd/party-membership/repository/redis"
	subscriptionRepo "github.com/ayoubkd/party-membership/repository/subscription"
	txRepo "github.com/ayoubkd/party-membership/repository/tx"
	"github.com/ayoubkd/party-membership/thirdparty/rabbitmq"
	"github.com/ayoubkd/party-membership/transport"
	"github.com/ayoubkd/party-membership/utils/logger"
)

// @title PARTY MEMBERSHIP API
// @version 1.0
// @description Party membership management API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	MemberRepo := memberRepo.NewMemberRepository(db)
	OTPRepo := otpRepo.NewOTPRepository(db)
	AdminRepo := adminRepo.NewAdminRepository(db)
	SubscriptionRepo := subscriptionRepo.NewSubscriptionRepository(db)
	EventRepo := eventRepo.NewEventRepository(db)
	ContentRepo := contentRepo.NewContentRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// RabbitMQ carries SMS dispatch and delayed OTP expiration messages.
	// The service degrades to lazy expiry only when the broker is disabled.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()

		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Internal.APIURL, cfg.Internal.APIKey)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer func() {
			_ = consumer.Close()
		}()

		go func() {
			if err := consumer.Start(context.Background()); err != nil {
				logger.Error("rabbitmq consumer stopped", zap.Error(err))
			}
		}()
	}

	// Initialize application layers
	OTPApp := otpapp.NewOTPApp(cfg, OTPRepo, MemberRepo, publisher)
	MemberApp := memberapp.NewMemberApp(cfg, TxRepo, MemberRepo, OTPRepo, OTPApp, EventRepo, SubscriptionRepo, RedisRepo)
	AdminApp := adminapp.NewAdminApp(cfg, TxRepo, AdminRepo, MemberRepo, SubscriptionRepo, EventRepo, RedisRepo)
	ContentApp := contentapp.NewContentApp(ContentRepo)

	httpTransport := transport.NewTransport(MemberApp, OTPApp, AdminApp, ContentApp, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
