package handler

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"

	"freelance-hub-api/dto"
	"freelance-hub-api/dto/req"
	"freelance-hub-api/security"
	"freelance-hub-api/usecase"
	"freelance-hub-api/ws"
)

// NotificationSocketHandler binds one websocket to a user's personal
// notification stream. The channel is server-push; the only inbound frame
// a client may send is a ping.
type NotificationSocketHandler struct {
	Logger *logrus.Logger
	Hub    *ws.Hub
	Users  usecase.UserStore
	JWT    *security.JWT
}

func NewNotificationSocketHandler(logger *logrus.Logger, hub *ws.Hub, users usecase.UserStore, jwt *security.JWT) *NotificationSocketHandler {
	return &NotificationSocketHandler{Logger: logger, Hub: hub, Users: users, JWT: jwt}
}

func (handler *NotificationSocketHandler) HandleNotificationSocket(conn *websocket.Conn) {
	handler.serveNotifications(conn)
}

func (handler *NotificationSocketHandler) serveNotifications(conn wsConn) {
	ctx := context.Background()

	tokenUserID, err := handler.JWT.GetUserIdFromToken(conn.Query("token"))
	if err != nil {
		handler.Logger.WithError(err).Warn("Rejected notification socket: invalid token")
		closeWith(conn, ws.CloseUnauthorized, "invalid token")
		return
	}

	// A user may only subscribe to their own stream.
	if pathUserID := conn.Params("userId"); pathUserID != tokenUserID {
		handler.Logger.Warnf("Rejected notification socket: token user %s requested stream of %s", tokenUserID, pathUserID)
		closeWith(conn, ws.CloseForbidden, "cannot subscribe to another user's notifications")
		return
	}

	user, err := handler.Users.FindUserByID(ctx, tokenUserID)
	if err != nil {
		handler.Logger.WithError(err).Warnf("Rejected notification socket: unknown user %s", tokenUserID)
		closeWith(conn, ws.CloseUnauthorized, "unknown user")
		return
	}

	client := handler.Hub.NewClient(conn, user.ID, user.Name)
	channel := ws.NotificationChannel(user.ID)
	if err := handler.Hub.Join(ctx, channel, client); err != nil {
		handler.Logger.WithError(err).Errorf("Failed to join channel %s", channel)
		handler.Hub.Remove(ctx, client) // releases the write pump
		closeWith(conn, closeInternalError, "join failed")
		return
	}
	handler.Logger.Infof("Notification stream opened for user %s", user.ID)

	var teardown sync.Once
	cleanup := func() {
		teardown.Do(func() {
			handler.Hub.Remove(ctx, client)
			handler.Logger.Infof("Notification stream closed for user %s", user.ID)
		})
	}
	defer cleanup()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var frame req.NotificationFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			handler.Logger.Debugf("Ignoring malformed frame from user %s", user.ID)
			continue
		}

		if frame.Type == req.FrameTypePing {
			data, err := json.Marshal(dto.PongEvent{Type: dto.EventPong, Timestamp: frame.Timestamp})
			if err != nil {
				continue
			}
			client.Enqueue(data)
			continue
		}

		handler.Logger.Debugf("Ignoring frame type %q from user %s", frame.Type, user.ID)
	}
}
