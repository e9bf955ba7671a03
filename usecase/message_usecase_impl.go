package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"freelance-hub-api/dto/res"
	"freelance-hub-api/entity"
	"freelance-hub-api/enum"
)

type messageUsecase struct {
	messages MessageStore
	rooms    RoomStore
}

func NewMessageUsecase(messages MessageStore, rooms RoomStore) MessageUsecase {
	return &messageUsecase{messages: messages, rooms: rooms}
}

func (uc *messageUsecase) ProcessIncomingMessage(ctx context.Context, sender *entity.User, roomID, content, fileURL string) (res.MessageResponse, error) {
	if strings.TrimSpace(content) == "" && fileURL == "" {
		return res.MessageResponse{}, fmt.Errorf("message must have content or a file")
	}
	if _, err := uc.rooms.FindRoomByID(ctx, roomID); err != nil {
		return res.MessageResponse{}, fmt.Errorf("room %s: %w", roomID, err)
	}

	message := NewMessage(sender, roomID, content, fileURL)
	if err := uc.messages.CreateMessage(ctx, &message); err != nil {
		return res.MessageResponse{}, err
	}

	return SerializeMessage(&message, sender, sender.ID), nil
}

func (uc *messageUsecase) SaveBatch(ctx context.Context, roomID string, messages []entity.Message) error {
	return uc.messages.CreateMessages(ctx, roomID, messages)
}

func (uc *messageUsecase) MarkMessageRead(ctx context.Context, messageID, userID string) error {
	message, err := uc.messages.FindMessageByID(ctx, messageID)
	if err != nil {
		return fmt.Errorf("message %s: %w", messageID, err)
	}
	if message.SenderId == userID {
		return nil
	}
	return uc.messages.MarkRead(ctx, messageID, userID)
}

// NewMessage builds an unsaved message with its identity already
// assigned, so a batched message can be broadcast before its bulk insert
// lands without changing id. Content is stored trimmed.
func NewMessage(sender *entity.User, roomID, content, fileURL string) entity.Message {
	message := entity.Message{
		RoomID:   roomID,
		SenderId: sender.ID,
		Content:  strings.TrimSpace(content),
		Type:     messageTypeFor(fileURL),
	}
	message.ID = uuid.New().String()
	message.CreatedAt = time.Now()
	if fileURL != "" {
		message.AttachmentURL = fileURL
		message.AttachmentName = fileURL[strings.LastIndex(fileURL, "/")+1:]
	}
	return message
}

func messageTypeFor(fileURL string) enum.MessageType {
	if fileURL == "" {
		return enum.MessageTypeText
	}
	lower := strings.ToLower(fileURL)
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".webp"} {
		if strings.HasSuffix(lower, ext) {
			return enum.MessageTypeImage
		}
	}
	return enum.MessageTypeFile
}

// SerializeMessage renders a message for the wire, with read-state
// resolved for the requesting viewer.
func SerializeMessage(message *entity.Message, sender *entity.User, viewerID string) res.MessageResponse {
	response := res.MessageResponse{
		MessageID:      message.ID,
		RoomID:         message.RoomID,
		Content:        message.Content,
		MessageType:    string(message.Type),
		SenderID:       message.SenderId,
		SenderName:     sender.Name,
		SenderAvatar:   sender.Avatar,
		AttachmentURL:  message.AttachmentURL,
		AttachmentName: message.AttachmentName,
		AttachmentSize: message.AttachmentSize,
		IsEdited:       message.IsEdited,
		CreatedAt:      message.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	for _, read := range message.ReadBy {
		response.ReadBy = append(response.ReadBy, read.UserID)
		if read.UserID == viewerID {
			response.IsRead = true
		}
	}
	// The sender implicitly need not read their own message.
	if viewerID == message.SenderId {
		response.IsRead = true
	}
	return response
}
