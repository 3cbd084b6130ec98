package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/config"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/database"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/handler"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/middleware"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/payment"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/queue"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/repository"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/router"
	queue_publisher "github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/service"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/storage"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}

	// Repositories over the document collections
	users := repository.NewUserRepo(db)
	events := repository.NewEventRepo(db)
	team := repository.NewTeamRepo(db)
	regs := repository.NewRegistrationRepo(db)
	contacts := repository.NewContactRepo(db)
	donations := repository.NewDonationRepo(db)

	idxCtx, idxCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := users.EnsureIndexes(idxCtx); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}
	idxCancel()

	// Media upload proxy
	mediaCtx, mediaCancel := context.WithTimeout(context.Background(), 10*time.Second)
	media, err := storage.NewMediaStore(mediaCtx,
		cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
		cfg.MinioBucket, cfg.MinioUseSSL, cfg.MediaBaseURL)
	mediaCancel()
	if err != nil {
		log.Fatalf("media store: %v", err)
	}

	// Payment gateway client
	gateway := payment.NewClient(cfg.PaymentKeyID, cfg.PaymentKeySecret, cfg.PaymentBaseURL)

	// Redis is optional: a nil client turns the rate limiter and the
	// response cache into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and caching disabled")
	}
	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// Background consumer writing the notification trail
	go func() {
		if err := queue.StartSubmissionConsumer(); err != nil {
			log.Printf("submission consumer stopped: %v", err)
		}
	}()

	deps := router.Deps{
		Cfg:       cfg,
		Auth:      handler.NewAuthHandler(cfg, users),
		Events:    handler.NewEventHandler(events, media),
		Team:      handler.NewTeamHandler(team, media),
		Regs:      handler.NewRegistrationHandler(regs, media, queue_publisher.PublishSubmissionReceived),
		Contacts:  handler.NewContactHandler(contacts, queue_publisher.PublishSubmissionReceived),
		Donations: handler.NewDonationHandler(donations, gateway, queue_publisher.PublishSubmissionReceived),
		RateLimit: rateLimit,
		Cache:     cache,
	}

	e := echo.New()
	router.RegisterRoutes(e, deps)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
