package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"freelance-hub-api/cache"
	"freelance-hub-api/config/common"
	"freelance-hub-api/config/logger"
	"freelance-hub-api/handler"
	"freelance-hub-api/middleware"
	"freelance-hub-api/repository"
	"freelance-hub-api/routes"
	"freelance-hub-api/security"
	"freelance-hub-api/usecase"
	"freelance-hub-api/ws"
)

type AppConfig struct {
	*fiber.App
	*common.Config
	*validator.Validate
	*logrus.Logger
	*DBConfig
	*security.JWT
	*middleware.Middleware
	Cache cache.Cache
	Redis *redis.Client
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := NewLogrus()
	appLog := logger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, log)
	redisClient := NewRedisClient(newConfig, log)
	newCache := NewCache(redisClient)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:8080",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Config:     newConfig,
		Validate:   newValidator,
		Logger:     log,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
		Cache:      newCache,
		Redis:      redisClient,
	})

	if err := app.Listen(":" + newConfig.GetPortConfig()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newAuthRepository := repository.NewAuthRepository(aC.GetDB())
	newUserRepository := repository.NewUserRepository(aC.GetDB())
	newChatRoomRepository := repository.NewChatRoomRepository(aC.GetDB())
	newMessageRepository := repository.NewMessageRepository(aC.GetDB())
	newNotificationRepository := repository.NewNotificationRepository(aC.GetDB())

	hub := ws.NewHub(aC.Logger)
	if aC.Redis != nil {
		broker := ws.NewRedisBroker(aC.Redis, aC.GetAppConfig(), aC.Logger, hub.HandleEnvelope)
		hub.SetBroker(broker)
	}
	presence := ws.NewPresenceTracker(aC.Cache)
	limiter := ws.NewConnectionLimiter(aC.Cache)

	newAuthUsecase := usecase.NewAuthUsecase(newAuthRepository, aC.Validate, aC.Logger, aC.JWT)
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, aC.Logger, aC.JWT)
	newChatUsecase := usecase.NewChatUsecase(newChatRoomRepository, newMessageRepository, aC.Cache, aC.Logger)
	newMessageUsecase := usecase.NewMessageUsecase(newMessageRepository, newChatRoomRepository)
	newNotificationUsecase := usecase.NewNotificationUsecase(newNotificationRepository, hub, aC.Logger)

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newChatHandler := handler.NewChatHandler(newChatUsecase, aC.Logger)
	newNotificationHandler := handler.NewNotificationHandler(newNotificationUsecase, aC.Logger)

	chatSocket := handler.NewChatSocketHandler(
		aC.Logger,
		hub,
		limiter,
		presence,
		newChatUsecase,
		newMessageUsecase,
		newUserRepository,
		aC.JWT,
		aC.GetBatchingConfig(),
	)
	notificationSocket := handler.NewNotificationSocketHandler(aC.Logger, hub, newUserRepository, aC.JWT)

	route := routes.ConfigRoute{
		App:                 aC.App,
		Middleware:          aC.Middleware,
		AuthHandler:         newAuthHandler,
		UserHandler:         newUserHandler,
		ChatHandler:         newChatHandler,
		NotificationHandler: newNotificationHandler,
	}
	route.GetRoute()
	route.GetWebSocketRoute(chatSocket, notificationSocket)
}
