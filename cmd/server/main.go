package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	donationhdl "github.com/niloyahmadramjan/surplusshare-server/internal/api/handlers/donation"
	favoritehdl "github.com/niloyahmadramjan/surplusshare-server/internal/api/handlers/favorite"
	requesthdl "github.com/niloyahmadramjan/surplusshare-server/internal/api/handlers/request"
	reviewhdl "github.com/niloyahmadramjan/surplusshare-server/internal/api/handlers/review"
	rolerequesthdl "github.com/niloyahmadramjan/surplusshare-server/internal/api/handlers/rolerequest"
	transactionhdl "github.com/niloyahmadramjan/surplusshare-server/internal/api/handlers/transaction"
	userhdl "github.com/niloyahmadramjan/surplusshare-server/internal/api/handlers/user"
	"github.com/niloyahmadramjan/surplusshare-server/internal/api/middleware"
	"github.com/niloyahmadramjan/surplusshare-server/internal/api/router"
	"github.com/niloyahmadramjan/surplusshare-server/internal/api/server"
	"github.com/niloyahmadramjan/surplusshare-server/internal/config"
	"github.com/niloyahmadramjan/surplusshare-server/internal/rabbitmq/handlers/decision"
	"github.com/niloyahmadramjan/surplusshare-server/internal/rabbitmq/queue"
	donationrepo "github.com/niloyahmadramjan/surplusshare-server/internal/repository/donation"
	favoriterepo "github.com/niloyahmadramjan/surplusshare-server/internal/repository/favorite"
	requestrepo "github.com/niloyahmadramjan/surplusshare-server/internal/repository/request"
	reviewrepo "github.com/niloyahmadramjan/surplusshare-server/internal/repository/review"
	rolerequestrepo "github.com/niloyahmadramjan/surplusshare-server/internal/repository/rolerequest"
	transactionrepo "github.com/niloyahmadramjan/surplusshare-server/internal/repository/transaction"
	userrepo "github.com/niloyahmadramjan/surplusshare-server/internal/repository/user"
	"github.com/niloyahmadramjan/surplusshare-server/internal/service/arbitration"
	donationsvc "github.com/niloyahmadramjan/surplusshare-server/internal/service/donation"
	favoritesvc "github.com/niloyahmadramjan/surplusshare-server/internal/service/favorite"
	notifiersvc "github.com/niloyahmadramjan/surplusshare-server/internal/service/notifier"
	reviewsvc "github.com/niloyahmadramjan/surplusshare-server/internal/service/review"
	rolerequestsvc "github.com/niloyahmadramjan/surplusshare-server/internal/service/rolerequest"
	transactionsvc "github.com/niloyahmadramjan/surplusshare-server/internal/service/transaction"
	usersvc "github.com/niloyahmadramjan/surplusshare-server/internal/service/user"
	"github.com/niloyahmadramjan/surplusshare-server/internal/worker"
	"github.com/niloyahmadramjan/surplusshare-server/pkg/email"
	"github.com/niloyahmadramjan/surplusshare-server/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewDecisionQueue(ch, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create decision queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)
	telegramClient := telegram.NewClient(cfg.Telegram.Token)

	notifiers := map[string]notifiersvc.Notifier{
		"email":    emailClient,
		"telegram": telegramClient,
	}

	donationRepo := donationrepo.NewRepository(db)
	requestRepo := requestrepo.NewRepository(db)
	reviewRepo := reviewrepo.NewRepository(db)
	favoriteRepo := favoriterepo.NewRepository(db)
	roleRequestRepo := rolerequestrepo.NewRepository(db)
	transactionRepo := transactionrepo.NewRepository(db)
	userRepo := userrepo.NewRepository(db)

	arbitrationService := arbitration.NewService(requestRepo, q, rdb)
	donationService := donationsvc.NewService(donationRepo, rdb)
	reviewService := reviewsvc.NewService(reviewRepo)
	favoriteService := favoritesvc.NewService(favoriteRepo)
	userService := usersvc.NewService(userRepo)
	roleRequestService := rolerequestsvc.NewService(roleRequestRepo, userRepo)
	transactionService := transactionsvc.NewService(transactionRepo)
	notifierService := notifiersvc.NewService(notifiers)

	messageHandler := decision.NewHandler(notifierService)
	notifier := worker.NewNotifier(q, messageHandler)

	go notifier.Run(ctx, cfg.Retry, cfg.Workers.Count)

	auth, err := middleware.New(cfg.Auth)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to init auth middleware")
	}

	handlers := router.Handlers{
		Donation:    donationhdl.NewHandler(donationService, val, cfg),
		Request:     requesthdl.NewHandler(arbitrationService, val, cfg),
		Review:      reviewhdl.NewHandler(reviewService, val),
		Favorite:    favoritehdl.NewHandler(favoriteService, val),
		RoleRequest: rolerequesthdl.NewHandler(roleRequestService, val),
		Transaction: transactionhdl.NewHandler(transactionService, val),
		User:        userhdl.NewHandler(userService, val),
	}

	r := router.New(handlers, auth)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
