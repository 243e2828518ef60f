package interfaces

import (
	"context"

	"duoChat/internal/models"
)

//go:generate mockgen -destination=mocks/mock_message_repository.go -package=mocks duoChat/internal/interfaces MessageRepository

// MessageRepository is the Message Store.
type MessageRepository interface {
	SaveMessage(ctx context.Context, message *models.Message) error
	// GetMessagesBetween returns both directions of the pair, oldest first.
	GetMessagesBetween(ctx context.Context, userA, userB string) ([]*models.Message, error)
	// MarkMessagesSeen flips seen on the given ids that are addressed to
	// receiverID and still unseen. It reports how many rows changed.
	MarkMessagesSeen(ctx context.Context, receiverID string, messageIDs []string) (int64, error)
	// CountUnseenBySender maps sender id to the number of unseen messages
	// addressed to receiverID. Senders with nothing unseen are absent.
	CountUnseenBySender(ctx context.Context, receiverID string) (map[string]int64, error)
	DeleteUserMessages(ctx context.Context, userID string) (int64, error)
}
