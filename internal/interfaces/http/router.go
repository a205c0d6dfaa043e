package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	cartusecases "rannaghore/internal/application/cart/usecases"
	catalogusecases "rannaghore/internal/application/catalog/usecases"
	appnotification "rannaghore/internal/application/notification"
	notificationusecases "rannaghore/internal/application/notification/usecases"
	orderusecases "rannaghore/internal/application/order/usecases"
	ticketusecases "rannaghore/internal/application/ticket/usecases"
	userusecases "rannaghore/internal/application/user/usecases"
	domainnotification "rannaghore/internal/domain/notification"
	domainticket "rannaghore/internal/domain/ticket"
	"rannaghore/internal/infrastructure/auth"
	"rannaghore/internal/infrastructure/config"
	"rannaghore/internal/infrastructure/email"
	"rannaghore/internal/infrastructure/queue"
	"rannaghore/internal/infrastructure/ratelimit"
	"rannaghore/internal/infrastructure/repository"
	"rannaghore/internal/infrastructure/storage"
	authhandlers "rannaghore/internal/interfaces/http/handlers/auth"
	carthandlers "rannaghore/internal/interfaces/http/handlers/cart"
	cataloghandlers "rannaghore/internal/interfaces/http/handlers/catalog"
	orderhandlers "rannaghore/internal/interfaces/http/handlers/order"
	tickethandlers "rannaghore/internal/interfaces/http/handlers/ticket"
	"rannaghore/internal/interfaces/http/middleware"
	"rannaghore/internal/interfaces/http/routes"
	"rannaghore/internal/shared/db"
	"rannaghore/internal/shared/logger"
	"rannaghore/internal/shared/services/markdown"
)

// submitLimits throttles the anonymous support form per client IP.
var submitLimits = ratelimit.RateLimitConfig{
	RequestsPerMinute: 5,
	RequestsPerHour:   20,
	RequestsPerDay:    50,
}

// Router wires repositories, usecases and handlers into a gin engine.
type Router struct {
	engine         *gin.Engine
	catalogHandler *cataloghandlers.CatalogHandler
	cartHandler    *carthandlers.CartHandler
	orderHandler   *orderhandlers.OrderHandler
	ticketHandler  *tickethandlers.TicketHandler
	authHandler    *authhandlers.AuthHandler
	authMiddleware *middleware.AuthMiddleware
	submitLimiter  gin.HandlerFunc
	worker         *appnotification.Worker
}

// NewRouter builds the full dependency graph for the storefront. The redis
// client may be nil, in which case the notification queue falls back to the
// in-process channel and the rate limiter allows everything.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	productRepo := repository.NewProductRepository(database)
	cartRepo := repository.NewCartItemRepository(database)
	orderRepo := repository.NewOrderRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	faqRepo := repository.NewFAQRepository(database)
	userRepo := repository.NewUserRepository(database)
	oauthRepo := repository.NewOAuthAccountRepository(database)
	notificationRepo := repository.NewNotificationRepository(database)

	txManager := db.NewTransactionManager(database)
	numberAllocator := repository.NewOrderNumberAllocator(database)
	ticketNumbers := domainticket.NewUniqueNumberGenerator(ticketRepo)
	markdownService := markdown.NewService()

	// With Redis the standalone cmd/worker process drains the queue. Without
	// it the queue is an in-process channel, so the server embeds the worker.
	var notificationQueue domainnotification.Queue
	var worker *appnotification.Worker
	if redisClient != nil {
		notificationQueue = queue.NewRedisQueue(redisClient, queue.DefaultKey)
	} else {
		notificationQueue = queue.NewMemoryQueue()
		mailer := email.NewSMTPMailer(cfg.Email, log)
		deliverUC := notificationusecases.NewDeliverNotificationUseCase(notificationRepo, mailer, log)
		worker = appnotification.NewWorker(notificationQueue, notificationRepo, deliverUC, log)
	}
	dispatcher := appnotification.NewQueueDispatcher(notificationRepo, notificationQueue, log)

	fileStore, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		return nil, err
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	googleClient := auth.NewGoogleOAuthClient(cfg.OAuth.Google)

	listProductsUC := catalogusecases.NewListProductsUseCase(productRepo, log)
	getProductUC := catalogusecases.NewGetProductUseCase(productRepo, log)
	catalogHandler := cataloghandlers.NewCatalogHandler(listProductsUC, getProductUC)

	viewCartUC := cartusecases.NewViewCartUseCase(cartRepo, productRepo, log)
	addToCartUC := cartusecases.NewAddToCartUseCase(cartRepo, productRepo, log)
	removeFromCartUC := cartusecases.NewRemoveFromCartUseCase(cartRepo, log)
	cartHandler := carthandlers.NewCartHandler(viewCartUC, addToCartUC, removeFromCartUC)

	getCheckoutUC := orderusecases.NewGetCheckoutUseCase(productRepo, cfg.Shop, log)
	placeOrderUC := orderusecases.NewPlaceOrderUseCase(orderRepo, numberAllocator, productRepo, txManager, dispatcher, cfg.Shop, log)
	getConfirmationUC := orderusecases.NewGetConfirmationUseCase(orderRepo, productRepo, log)
	orderHandler := orderhandlers.NewOrderHandler(getCheckoutUC, placeOrderUC, getConfirmationUC)

	submitTicketUC := ticketusecases.NewSubmitTicketUseCase(ticketRepo, ticketNumbers, fileStore, dispatcher, cfg.Upload, cfg.Shop, log)
	trackTicketUC := ticketusecases.NewTrackTicketUseCase(ticketRepo, log)
	closeTicketUC := ticketusecases.NewCloseTicketUseCase(ticketRepo, log)
	rateTicketUC := ticketusecases.NewRateTicketUseCase(ticketRepo, log)
	searchFAQsUC := ticketusecases.NewSearchFAQsUseCase(faqRepo, markdownService, log)
	listFAQsUC := ticketusecases.NewListFAQsUseCase(faqRepo, markdownService, log)
	ticketHandler := tickethandlers.NewTicketHandler(submitTicketUC, trackTicketUC, closeTicketUC, rateTicketUC, searchFAQsUC, listFAQsUC)

	registerUC := userusecases.NewRegisterWithPasswordUseCase(userRepo, hasher, jwtService, log)
	loginUC := userusecases.NewLoginWithPasswordUseCase(userRepo, hasher, jwtService, log)
	initiateGoogleUC := userusecases.NewInitiateGoogleLoginUseCase(googleClient, log)
	googleCallbackUC := userusecases.NewHandleGoogleCallbackUseCase(userRepo, oauthRepo, googleClient, jwtService, log)
	authHandler := authhandlers.NewAuthHandler(registerUC, loginUC, initiateGoogleUC, googleCallbackUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var limiter ratelimit.RateLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	} else {
		limiter = ratelimit.NewAllowAllLimiter()
	}
	submitLimiter := middleware.RateLimit(limiter, submitLimits)

	return &Router{
		engine:         engine,
		catalogHandler: catalogHandler,
		cartHandler:    cartHandler,
		orderHandler:   orderHandler,
		ticketHandler:  ticketHandler,
		authHandler:    authHandler,
		authMiddleware: authMiddleware,
		submitLimiter:  submitLimiter,
		worker:         worker,
	}, nil
}

// NotificationWorker returns the embedded delivery worker, or nil when a
// standalone worker process owns delivery.
func (r *Router) NotificationWorker() *appnotification.Worker {
	return r.worker
}

// SetupRoutes installs the middleware chain and every route group.
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Storefront page aliases: the home page is the product list, the help
	// page is the FAQ list.
	r.engine.GET("/", r.catalogHandler.ListProducts)
	r.engine.GET("/help-support", r.ticketHandler.ListFAQs)
	r.engine.GET("/about", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"data": gin.H{
				"name":          "Rannaghore Protidin",
				"support_email": cfg.Shop.SupportEmail,
				"support_phone": cfg.Shop.SupportPhone,
			},
		})
	})

	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{
		CatalogHandler: r.catalogHandler,
	})
	routes.SetupCartRoutes(r.engine, &routes.CartRouteConfig{
		CartHandler:    r.cartHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupOrderRoutes(r.engine, &routes.OrderRouteConfig{
		OrderHandler:   r.orderHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
		SubmitLimiter: r.submitLimiter,
	})
	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
