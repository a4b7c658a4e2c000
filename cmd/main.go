package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"velya/internal/config"
	"velya/internal/entities"
	"velya/internal/infrastructure"
	httpiface "velya/internal/interfaces/http"
	"velya/internal/localization"
	"velya/internal/logging"
	"velya/internal/nlu"
	"velya/internal/repository"
	"velya/internal/usecases"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	pg, err := infrastructure.NewPostgresClient(cfg.Postgres.URL)
	if err != nil {
		log.Fatal("postgres connection failed", zap.Error(err))
	}
	defer pg.Close()

	store := repository.NewStore(pg.Pool, log)
	archive := repository.NewArchiveRepository(pg.Pool, log)
	operators := repository.NewOperatorRepository(pg.Pool)

	auth := usecases.NewAuthUsecase(operators, cfg.Auth.JWTSecret)
	if err := auth.EnsureAdmin(context.Background(), cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		log.Fatal("failed to seed admin operator", zap.Error(err))
	}

	generator := infrastructure.NewOpenRouterClient(infrastructure.OpenRouterOptions{
		APIKey:      cfg.OpenRouter.APIKey,
		BaseURL:     cfg.OpenRouter.BaseURL,
		Model:       cfg.OpenRouter.Model,
		Temperature: cfg.OpenRouter.Temperature,
		MaxTokens:   cfg.OpenRouter.MaxTokens,
		Timeout:     time.Duration(cfg.OpenRouter.TimeoutSec) * time.Second,
		MaxAttempts: cfg.OpenRouter.MaxAttempts,
		RetryDelay:  time.Duration(cfg.OpenRouter.RetryDelayMs) * time.Millisecond,
	}, log)

	picker := localization.NewRandomPicker()
	catalog := localization.NewCatalog(picker)
	resolver := usecases.NewResolver(usecases.ResolverOptions{
		Store:        store,
		Generator:    generator,
		Archive:      archive,
		Detector:     nlu.NewDetector(),
		Catalog:      catalog,
		Picker:       picker,
		Post:         usecases.NewPostProcessor(cfg.Reply.MaxLength, catalog, picker),
		Logger:       log,
		FAQThreshold: cfg.Reply.FAQSimilarity,
	})

	limiter := infrastructure.NewSenderRateLimiter(1, 5)

	handleInbound := func(platform string, send func(to, content string) error) func(sender, content string) {
		return func(sender, content string) {
			if !limiter.Allow(sender) {
				log.Warn("sender rate limited",
					zap.String("platform", platform),
					zap.String("sender", sender))
				return
			}
			exchange := resolver.Resolve(context.Background(), entities.InboundMessage{
				From:       sender,
				Content:    content,
				Platform:   platform,
				ReceivedAt: time.Now(),
			})
			if err := send(sender, exchange.Reply.Body); err != nil {
				log.Error("failed to deliver reply",
					zap.String("platform", platform),
					zap.String("sender", sender),
					zap.Error(err))
			}
		}
	}

	var whatsapp *infrastructure.WhatsAppClient
	if cfg.WhatsApp.Enabled {
		whatsapp, err = infrastructure.NewWhatsAppClient(cfg.WhatsApp.SessionPath, log)
		if err != nil {
			log.Fatal("whatsapp client failed", zap.Error(err))
		}
		waHandler := handleInbound("whatsapp", whatsapp.SendMessage)
		whatsapp.OnMessage(func(sender, content string) {
			whatsapp.SendPresence(sender)
			waHandler(sender, content)
		})
		if err := whatsapp.Connect(); err != nil {
			log.Fatal("whatsapp connect failed", zap.Error(err))
		}
		defer whatsapp.Disconnect()
	}

	var telegram *infrastructure.TelegramClient
	if cfg.Telegram.Enabled && cfg.Telegram.Token != "" {
		telegram, err = infrastructure.NewTelegramClient(cfg.Telegram.Token, log)
		if err != nil {
			log.Fatal("telegram client failed", zap.Error(err))
		}
		go telegram.Run(handleInbound("telegram", telegram.SendMessage))
		defer telegram.Stop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handler := httpiface.NewHandler(resolver, auth, store, archive, whatsapp, limiter, log)
	handler.RegisterRoutes(router, httpiface.NewMiddleware(cfg.Auth.JWTSecret))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", zap.Error(err))
	}
}
