package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"freelance-hub-api/handler"
	"freelance-hub-api/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.ChatHandler
	*handler.NotificationHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")
	app.Post("/auth/register", rc.AuthHandler.RegisterUser)
	app.Post("/auth/login", rc.AuthHandler.LoginUser)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api/v1")
	app.Use(rc.Middleware.JWTProtected)

	app.Get("/auth/me", rc.UserHandler.GetCurrentUser)
	app.Get("/users", rc.UserHandler.GetAllUser)

	app.Use(rc.Middleware.ExtractUserID)

	app.Get("/chats", rc.ChatHandler.GetAllRooms)
	app.Post("/chats", rc.ChatHandler.CreateRoom)
	app.Get("/chats/:roomId/messages", rc.ChatHandler.GetMessagesByRoomID)

	app.Get("/notifications", rc.NotificationHandler.GetAllNotifications)
	app.Patch("/notifications/read-all", rc.NotificationHandler.MarkAllNotificationsRead)
	app.Patch("/notifications/:notificationId/read", rc.NotificationHandler.MarkNotificationRead)
	app.Delete("/notifications", rc.NotificationHandler.ClearAllNotifications)
}

func (rc *ConfigRoute) GetWebSocketRoute(chatSocket *handler.ChatSocketHandler, notificationSocket *handler.NotificationSocketHandler) {
	rc.App.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	rc.App.Get("/ws/chat/:roomId", websocket.New(chatSocket.HandleChatSocket))
	rc.App.Get("/ws/notifications/:userId", websocket.New(notificationSocket.HandleNotificationSocket))
}
