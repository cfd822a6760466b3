package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"aptfee_backend/internals/configs"
	database "aptfee_backend/internals/databases"
	paymentService "aptfee_backend/internals/features/finance/payments/service"
	emailService "aptfee_backend/internals/features/home/email/service"
	scheduler "aptfee_backend/internals/features/users/auth/scheduler"
	authService "aptfee_backend/internals/features/users/auth/service"
	helper "aptfee_backend/internals/helpers"
	ossHelper "aptfee_backend/internals/helpers/oss"
	middlewares "aptfee_backend/internals/middlewares"
	routes "aptfee_backend/internals/route"
	"aptfee_backend/internals/seeds"
)

func main() {
	cfg := configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.FiberErrorHandler,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		BodyLimit:               10 * 1024 * 1024, // contract documents
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// keep in step with statement_timeout on the DB side
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	// DB connect + schema + pool + warm-up
	database.ConnectDB(cfg)
	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("[ERROR] migrate: %v", err)
	}
	database.TunePool()
	database.WarmUpQueries()

	seeds.RunAllSeeds(database.DB, cfg)

	// revoked-token cleanup after the DB is ready
	cleanup, err := scheduler.StartRevokedTokenCleanup(database.DB, cfg.TokenCleanupCron)
	if err != nil {
		log.Fatalf("[ERROR] cleanup scheduler: %v", err)
	}

	deps := routes.Deps{
		DB:       database.DB,
		Tokens:   authService.NewTokenService(database.DB, cfg),
		Payments: paymentService.NewPaymentService(database.DB, paymentService.NewSnapGateway(cfg.MidtransServerKey, cfg.MidtransUseProd), cfg.MidtransServerKey),
	}

	if store, err := ossHelper.NewOSSService(cfg); err == nil {
		deps.Documents = store
	} else if errors.Is(err, ossHelper.ErrNotConfigured) {
		log.Println("[WARN] ALI_OSS_* not set, contract uploads disabled")
	} else {
		log.Printf("[ERROR] OSS init: %v", err)
	}

	if mailer := emailService.NewSMTPMailer(emailService.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}); mailer != nil {
		deps.Mailer = mailer
	} else {
		log.Println("[WARN] SMTP_HOST not set, email endpoints disabled")
	}

	routes.SetupRoutes(app, deps)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("[INFO] Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown, then stop cron and close the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	<-cleanup.Stop().Done()

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
