package handler

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"net"
	"strings"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"

	"freelance-hub-api/dto"
	"freelance-hub-api/dto/req"
	"freelance-hub-api/entity"
	"freelance-hub-api/security"
	"freelance-hub-api/usecase"
	"freelance-hub-api/ws"
)

// RFC 6455 internal-error close code.
const closeInternalError = 1011

// wsConn is the slice of *websocket.Conn the socket handlers touch.
// Tests drive the session state machine through it with scripted frames.
type wsConn interface {
	Params(key string, defaultValue ...string) string
	Query(key string, defaultValue ...string) string
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
	RemoteAddr() net.Addr
}

// ChatSocketHandler runs the lifecycle of one chat-room websocket: rate
// limit, authenticate, authorize against room membership, then pump
// frames until disconnect.
type ChatSocketHandler struct {
	Logger         *logrus.Logger
	Hub            *ws.Hub
	Limiter        *ws.ConnectionLimiter
	Presence       *ws.PresenceTracker
	ChatUsecase    usecase.ChatUsecase
	MessageUsecase usecase.MessageUsecase
	Users          usecase.UserStore
	JWT            *security.JWT
	Batching       bool
}

func NewChatSocketHandler(
	logger *logrus.Logger,
	hub *ws.Hub,
	limiter *ws.ConnectionLimiter,
	presence *ws.PresenceTracker,
	chatUsecase usecase.ChatUsecase,
	messageUsecase usecase.MessageUsecase,
	users usecase.UserStore,
	jwt *security.JWT,
	batching bool,
) *ChatSocketHandler {
	return &ChatSocketHandler{
		Logger:         logger,
		Hub:            hub,
		Limiter:        limiter,
		Presence:       presence,
		ChatUsecase:    chatUsecase,
		MessageUsecase: messageUsecase,
		Users:          users,
		JWT:            jwt,
		Batching:       batching,
	}
}

func (handler *ChatSocketHandler) HandleChatSocket(conn *websocket.Conn) {
	handler.serveChat(conn)
}

func (handler *ChatSocketHandler) serveChat(conn wsConn) {
	ctx := context.Background()
	roomID := conn.Params("roomId")

	// Rate limit before spending anything on auth.
	origin := clientIP(conn)
	if !handler.Limiter.Allow(ctx, origin) {
		handler.Logger.Warnf("Rate limit exceeded for %s", origin)
		closeWith(conn, ws.CloseRateLimited, "rate limit exceeded")
		return
	}

	userID, err := handler.JWT.GetUserIdFromToken(conn.Query("token"))
	if err != nil {
		handler.Logger.WithError(err).Warn("Rejected chat socket: invalid token")
		closeWith(conn, ws.CloseUnauthorized, "invalid token")
		return
	}

	user, err := handler.Users.FindUserByID(ctx, userID)
	if err != nil {
		handler.Logger.WithError(err).Warnf("Rejected chat socket: unknown user %s", userID)
		closeWith(conn, ws.CloseUnauthorized, "unknown user")
		return
	}

	allowed, err := handler.ChatUsecase.CheckRoomAccess(ctx, roomID, userID)
	if err != nil || !allowed {
		handler.Logger.Warnf("Rejected chat socket: user %s not in room %s", userID, roomID)
		closeWith(conn, ws.CloseForbidden, "not a participant of this room")
		return
	}

	client := handler.Hub.NewClient(conn, userID, user.Name)
	channel := ws.ChatChannel(roomID)
	if err := handler.Hub.Join(ctx, channel, client); err != nil {
		handler.Logger.WithError(err).Errorf("Failed to join channel %s", channel)
		handler.Hub.Remove(ctx, client) // releases the write pump
		closeWith(conn, closeInternalError, "join failed")
		return
	}

	if err := handler.Presence.SetOnline(ctx, userID, true); err != nil {
		handler.Logger.WithError(err).Warn("Failed to record presence")
	}

	handler.broadcast(ctx, channel, dto.PresenceEvent{
		Type:     dto.EventUserJoined,
		UserID:   userID,
		Username: user.Name,
	}, client.ID)

	batch := newMessageBatch()

	var teardown sync.Once
	cleanup := func() {
		teardown.Do(func() {
			if batch.Len() > 0 {
				handler.flush(ctx, roomID, batch)
			}
			if err := handler.Presence.SetOnline(ctx, userID, false); err != nil {
				handler.Logger.WithError(err).Warn("Failed to clear presence")
			}
			handler.broadcast(ctx, channel, dto.PresenceEvent{
				Type:     dto.EventUserLeft,
				UserID:   userID,
				Username: user.Name,
			}, client.ID)
			handler.Hub.Remove(ctx, client)
			handler.Logger.Infof("Chat session closed: user %s room %s", userID, roomID)
		})
	}
	defer cleanup()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var frame req.ChatFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			handler.sendError(client, "invalid JSON")
			continue
		}

		switch frame.Type {
		case req.FrameTypeTyping:
			handler.broadcast(ctx, channel, dto.TypingEvent{
				Type:     dto.EventTypingIndicator,
				UserID:   userID,
				Username: user.Name,
				IsTyping: frame.IsTyping,
			}, client.ID)

		case req.FrameTypeMarkRead:
			if frame.MessageID == "" {
				handler.sendError(client, "message_id is required")
				continue
			}
			if err := handler.MessageUsecase.MarkMessageRead(ctx, frame.MessageID, userID); err != nil {
				handler.Logger.WithError(err).Warnf("Failed to mark message %s read", frame.MessageID)
				handler.sendError(client, "failed to mark message as read")
			}

		case "", req.FrameTypeMessage:
			handler.handleMessage(ctx, client, user, roomID, channel, frame, batch)

		default:
			handler.sendError(client, "unknown frame type: "+frame.Type)
		}
	}
}

func (handler *ChatSocketHandler) handleMessage(
	ctx context.Context,
	client *ws.Client,
	sender *entity.User,
	roomID, channel string,
	frame req.ChatFrame,
	batch *messageBatch,
) {
	if strings.TrimSpace(frame.Content) == "" && frame.FileURL == "" {
		handler.sendError(client, "message must have content or a file")
		return
	}

	if !handler.Batching {
		response, err := handler.MessageUsecase.ProcessIncomingMessage(ctx, sender, roomID, frame.Content, frame.FileURL)
		if err != nil {
			handler.Logger.WithError(err).Error("Failed to persist message")
			handler.sendError(client, "failed to send message")
			return
		}
		handler.broadcast(ctx, channel, dto.ChatMessageEvent{
			Type:    dto.EventChatMessage,
			Message: response,
		}, "")
		return
	}

	// Batched path: identity is pre-assigned so the broadcast carries the
	// final id before the bulk insert lands.
	message := usecase.NewMessage(sender, roomID, frame.Content, frame.FileURL)
	batch.Add(message)
	handler.broadcast(ctx, channel, dto.ChatMessageEvent{
		Type:    dto.EventChatMessage,
		Message: usecase.SerializeMessage(&message, sender, sender.ID),
	}, "")

	if batch.Due() {
		handler.flush(ctx, roomID, batch)
	}
}

func (handler *ChatSocketHandler) flush(ctx context.Context, roomID string, batch *messageBatch) {
	pending := batch.Drain()
	if len(pending) == 0 {
		return
	}
	if err := handler.MessageUsecase.SaveBatch(ctx, roomID, pending); err != nil {
		handler.Logger.WithError(err).Errorf("Failed to flush %d messages for room %s", len(pending), roomID)
		return
	}
	handler.Logger.Debugf("Flushed %d messages for room %s", len(pending), roomID)
}

func (handler *ChatSocketHandler) broadcast(ctx context.Context, channel string, event interface{}, excludeID string) {
	if err := handler.Hub.Broadcast(ctx, channel, event, excludeID); err != nil {
		handler.Logger.WithError(err).Warnf("Failed to broadcast on %s", channel)
	}
}

// sendError pushes an error event to one client only.
func (handler *ChatSocketHandler) sendError(client *ws.Client, message string) {
	data, err := json.Marshal(dto.ErrorEvent{Type: dto.EventError, Message: message})
	if err != nil {
		return
	}
	client.Enqueue(data)
}

// closeWith sends a close frame with an application close code, then
// drops the connection.
func closeWith(conn wsConn, code int, reason string) {
	payload := make([]byte, 2+len(reason))
	binary.BigEndian.PutUint16(payload, uint16(code))
	copy(payload[2:], reason)
	_ = conn.WriteMessage(websocket.CloseMessage, payload)
	_ = conn.Close()
}

func clientIP(conn wsConn) string {
	addr := conn.RemoteAddr().String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
