package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "waste_pickup/docs"
	"waste_pickup/internal/adapter/http/handlers"
	"waste_pickup/internal/adapter/http/middleware"
	"waste_pickup/internal/adapter/persistence/repository"
	"waste_pickup/internal/config"
	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/infrastructure/database"
	"waste_pickup/internal/infrastructure/notifier"
	"waste_pickup/internal/infrastructure/ratelimit"
	"waste_pickup/internal/infrastructure/scheduler"
	"waste_pickup/internal/usecase"
	"waste_pickup/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 10 * time.Second

	rewardBackfillInterval = time.Hour
	// rewardBackfillWindow bounds the completed requests rescanned per run.
	rewardBackfillWindow = 30 * 24 * time.Hour
)

// App holds the wired service: HTTP router plus background jobs.
type App struct {
	Router    *gin.Engine
	Scheduler *scheduler.Scheduler
	limiter   *ratelimit.FixedWindowLimiter
}

type repositories struct {
	requests      interfaces.IPickupRequestRepository
	rewards       interfaces.IRewardRepository
	notifications interfaces.INotificationRepository
}

// Run will start the server
func Run() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := buildRepositories(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	app, err := newApp(cfg, repos)
	if err != nil {
		log.Fatalf("Failed to wire application: %v", err)
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[http][server] listening addr=%s storage=%s", srv.Addr, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error { return app.Scheduler.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	log.Printf("[http][server] stopped")
}

func buildRepositories(ctx context.Context, cfg config.Settings) (repositories, error) {
	if cfg.StorageDriver == config.StorageMemory {
		return memoryRepositories(), nil
	}
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return repositories{}, err
	}
	if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		if err := database.EnsureTables(ctx, ddb, database.ServiceTables()); err != nil {
			return repositories{}, fmt.Errorf("ensure tables: %w", err)
		}
	}
	return repositories{
		requests:      repository.NewPickupRequestDynamoRepository(ddb, cfg.Location),
		rewards:       repository.NewRewardDynamoRepository(ddb),
		notifications: repository.NewNotificationDynamoRepository(ddb),
	}, nil
}

func memoryRepositories() repositories {
	return repositories{
		requests:      repository.NewPickupRequestMemoryRepository(),
		rewards:       repository.NewRewardMemoryRepository(),
		notifications: repository.NewNotificationMemoryRepository(),
	}
}

// newApp wires use cases, transports and jobs on top of repos.
func newApp(cfg config.Settings, repos repositories) (*App, error) {
	verifier, err := middleware.NewTokenVerifier(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	var limiter *ratelimit.FixedWindowLimiter
	if cfg.RedisAddr != "" && cfg.RateLimitPerMin > 0 {
		limiter, err = ratelimit.NewRedisFixedWindowLimiter(cfg.RedisAddr, cfg.RedisPassword, "", cfg.RateLimitPerMin, time.Minute)
		if err != nil {
			return nil, err
		}
	} else {
		log.Printf("[http][ratelimit] disabled (REDIS_ADDR not set)")
	}

	hub := notifier.NewHub()
	senders := map[entities.NotificationChannel]interfaces.INotificationSender{
		entities.NotificationChannelInApp: notifier.NewInAppSender(hub),
		entities.NotificationChannelEmail: notifier.NewEmailSender(notifier.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.EmailFrom,
		}),
		entities.NotificationChannelSMS:  notifier.NewSMSSender(cfg.EnableSMS),
		entities.NotificationChannelPush: notifier.NewPushSender(cfg.EnablePush),
	}

	notificationUseCase := usecase.NewNotificationUseCase(repos.notifications, senders)
	slotUseCase := usecase.NewSlotUseCase(repos.requests, usecase.SlotConfig{
		StandardCapacity: cfg.SlotCapacityPerDay,
		SpecialCapacity:  cfg.SpecialSlotCapacity,
		Location:         cfg.Location,
	})
	rewardUseCase := usecase.NewRewardUseCase(repos.rewards, repos.requests)
	requestUseCase := usecase.NewPickupRequestUseCase(repos.requests, slotUseCase, rewardUseCase, notificationUseCase)

	router := gin.New()
	setMiddlewares(router)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1", middleware.RateLimit(limiterOrNil(limiter)))
	addPingRoutes(v1)

	notificationHandler := handlers.NewNotificationHandler(notificationUseCase, hub, verifier)
	// The WebSocket handshake authenticates through the token query parameter.
	v1.GET(PathNotificationStream, notificationHandler.Stream)

	authed := v1.Group("", middleware.RequireAuth(verifier))
	addRequestRoutes(authed, handlers.NewPickupRequestHandler(requestUseCase))
	addSlotRoutes(authed, handlers.NewSlotHandler(slotUseCase))
	addRewardRoutes(authed, handlers.NewRewardHandler(rewardUseCase))
	addNotificationRoutes(authed, notificationHandler)

	jobs := scheduler.New(
		scheduler.Job{
			Name:     "draft-cleanup",
			Schedule: scheduler.DailyAt(cfg.CleanupHour, cfg.Location),
			Run: func(ctx context.Context) error {
				_, err := requestUseCase.CleanupStaleDrafts(ctx, cfg.DraftRetention())
				return err
			},
		},
		scheduler.Job{
			Name:     "notification-drain",
			Schedule: scheduler.Every(cfg.NotificationInterval()),
			Run: func(ctx context.Context) error {
				_, err := notificationUseCase.ProcessQueue(ctx)
				return err
			},
		},
		scheduler.Job{
			Name:     "reward-backfill",
			Schedule: scheduler.Every(rewardBackfillInterval),
			Run: func(ctx context.Context) error {
				_, err := rewardUseCase.Backfill(ctx, time.Now().Add(-rewardBackfillWindow))
				return err
			},
		},
	)

	return &App{Router: router, Scheduler: jobs, limiter: limiter}, nil
}

func (a *App) Close() {
	if a.limiter != nil {
		_ = a.limiter.Close()
	}
}

// limiterOrNil keeps a nil *FixedWindowLimiter from becoming a non-nil
// interface value.
func limiterOrNil(l *ratelimit.FixedWindowLimiter) middleware.Limiter {
	if l == nil {
		return nil
	}
	return l
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
