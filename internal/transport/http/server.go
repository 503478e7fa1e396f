package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "github.com/DRITI2906/HealthMate/internal/app"
	"github.com/DRITI2906/HealthMate/internal/bootstrap"
	"github.com/DRITI2906/HealthMate/internal/cache"
	"github.com/DRITI2906/HealthMate/internal/platform/rabbitmq"
	"github.com/DRITI2906/HealthMate/internal/repository"
	"github.com/DRITI2906/HealthMate/internal/transport/http/handler"
	"github.com/DRITI2906/HealthMate/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORS(app.Config.CORS.AllowedOrigins))

	userRepo := repository.NewUserRepository(app.MySQL)
	sessionRepo := repository.NewChatSessionRepository(app.MySQL)
	messageRepo := repository.NewChatMessageRepository(app.MySQL)
	medicationRepo := repository.NewMedicationRepository(app.MySQL)

	sessionCache := cache.NewSessionListCache(
		app.Redis,
		time.Duration(app.Config.Redis.HistoryTTLSeconds)*time.Second,
		time.Duration(app.Config.Redis.DirtyTTLSeconds)*time.Second,
	)
	auditPublisher := rabbitmq.NewEventPublisher(app.MQConn, app.Config.RabbitMQ.AuditEventQueue)

	// A nil *ai.Client must stay a nil interface so fallback mode kicks in.
	var llm appsvc.ChatCompleter
	if app.LLM != nil {
		llm = app.LLM
	}

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	chatService := appsvc.NewChatService(sessionRepo, messageRepo, llm, auditPublisher, sessionCache)
	medicationService := appsvc.NewMedicationService(medicationRepo, auditPublisher)
	symptomService := appsvc.NewSymptomService(llm)

	healthHandler := handler.NewHealthHandler(app)
	authHandler := handler.NewAuthHandler(authService)
	chatHandler := handler.NewChatHandler(chatService)
	medicationHandler := handler.NewMedicationHandler(medicationService)
	symptomHandler := handler.NewSymptomHandler(symptomService)

	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Check)

	api := router.Group("/api")
	api.POST("/signup", authHandler.Signup)
	api.POST("/signin", authHandler.Signin)
	api.POST("/assess-symptoms", symptomHandler.Assess)

	// Unauthenticated reads, preserved from the deployed contract even
	// though they expose any user's history by id.
	api.GET("/chat-history/:user_id", chatHandler.History)
	api.GET("/chat-messages/:session_id", chatHandler.Messages)

	authed := api.Group("")
	authed.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	authed.GET("/profile", authHandler.GetProfile)
	authed.PUT("/profile", authHandler.UpdateProfile)
	authed.POST("/chat", chatHandler.Chat)
	authed.GET("/medications", medicationHandler.List)
	authed.POST("/medications", medicationHandler.Create)
	authed.DELETE("/medications/:id", medicationHandler.Delete)

	return router
}
