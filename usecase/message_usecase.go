package usecase

import (
	"context"

	"freelance-hub-api/dto/res"
	"freelance-hub-api/entity"
)

type MessageUsecase interface {
	// ProcessIncomingMessage verifies the room, persists one message and
	// returns it serialized for broadcast. Nothing is broadcast when the
	// persist fails.
	ProcessIncomingMessage(ctx context.Context, sender *entity.User, roomID, content, fileURL string) (res.MessageResponse, error)

	// SaveBatch bulk-persists one flushed buffer of pre-built messages.
	SaveBatch(ctx context.Context, roomID string, messages []entity.Message) error

	// MarkMessageRead adds user to the message's read-set; a sender
	// marking their own message is a no-op.
	MarkMessageRead(ctx context.Context, messageID, userID string) error
}
