package bootstrap

import (
	"context"
	"log"

	"brandscope-be/internal/apiclient"
	"brandscope-be/internal/config"
	"brandscope-be/internal/controller"
	"brandscope-be/internal/handler"
	"brandscope-be/internal/pkg/logger"
	"brandscope-be/internal/service"
	"brandscope-be/internal/session"
	"brandscope-be/internal/store"
	"brandscope-be/internal/websocket"
	"brandscope-be/pkg/events"
	pktNats "brandscope-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	CompanyController controller.ICompanyController
	IntelController   controller.IIntelController
	SocialController  controller.ISocialController
	FinanceController controller.IFinanceController
	ScrapeController  controller.IScrapeController

	// Background services (exposed for main.go to run)
	NotifierService service.INotifierService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	// Session gate state, read by server middleware
	SessionManager *session.Manager
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Infrastructure
	// Redis (optional: session store falls back to the file store, hub
	// runs without cross-instance relay)
	var rdb *redis.Client
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	candidate := redis.NewClient(opt)
	if _, err := candidate.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	} else {
		rdb = candidate
	}

	// NATS mirror (best effort)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 3. Session gate
	var sessionStore session.Store
	if rdb != nil {
		sessionStore = session.NewRedisStore(rdb, cfg.Session.StorageKey)
	} else {
		sessionStore = session.NewFileStore(cfg.Session.FilePath)
	}
	sessionManager := session.NewManager(sessionStore)
	sessionManager.Rehydrate(context.Background())
	log.Printf("[INFO] Session rehydrated: %s", sessionManager.State())

	// 4. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)
	publisherService := service.NewPublisherService(service.TopicNotifications, pubSub, natsPub, sysLogger)

	// 5. HTTP adapter, with the 401 teardown hook
	apiClient := apiclient.New(cfg.Intel.BaseURL, cfg.Intel.Timeout, sessionManager, sysLogger)
	apiClient.OnUnauthorized(func(ctx context.Context) {
		if err := sessionManager.Clear(ctx); err != nil {
			sysLogger.Error("Bootstrap", "Session teardown failed", map[string]interface{}{"error": err.Error()})
		}
		_ = publisherService.Publish(ctx, events.New(events.TypeSessionExpired, nil))
	})

	// 6. Resource stores
	companyStore := store.NewCompanyStore(apiClient, sysLogger)
	overviewStore := store.NewOverviewStore(apiClient, sysLogger)
	socialStore := store.NewSocialStore(apiClient, sysLogger)
	websiteStore := store.NewWebsiteStore(apiClient, sysLogger)
	revenueStore := store.NewRevenueStore(apiClient, sysLogger, cfg.Cache.FreshnessWindow)
	fundraisingStore := store.NewFundraisingStore(apiClient, sysLogger, cfg.Cache.FreshnessWindow)
	scrapeStore := store.NewScrapeStore(apiClient, publisherService, sysLogger)
	authStore := store.NewAuthStore(apiClient, sessionManager, publisherService, sysLogger)

	// 7. Notification system
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	notifierService := service.NewNotifierService(pubSub, service.TopicNotifications, wsHub, wsLogger)
	notifHandler := handler.NewNotificationHandler(sessionManager, wsHub, wsLogger)

	// 8. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authStore, sessionManager),
		CompanyController: controller.NewCompanyController(companyStore, scrapeStore, publisherService),
		IntelController:   controller.NewIntelController(overviewStore, websiteStore),
		SocialController:  controller.NewSocialController(socialStore),
		FinanceController: controller.NewFinanceController(revenueStore, fundraisingStore),
		ScrapeController:  controller.NewScrapeController(scrapeStore),

		NotifierService:     notifierService,
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
		SessionManager:      sessionManager,
	}
}
