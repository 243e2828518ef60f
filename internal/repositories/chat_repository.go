package repositories

import (
	"context"

	"duoChat/internal/errs"
	"duoChat/internal/interfaces"
	"duoChat/internal/models"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

var _ interfaces.MessageRepository = (*ChatRepository)(nil)

// ChatRepository is the postgres Message Store.
type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{
		db: db,
	}
}

func (chr *ChatRepository) SaveMessage(ctx context.Context, message *models.Message) error {
	if err := chr.db.WithContext(ctx).Create(message).Error; err != nil {
		return errs.Storage(pkgerrors.Wrap(err, "save message"))
	}
	return nil
}

func (chr *ChatRepository) GetMessagesBetween(ctx context.Context, userA, userB string) ([]*models.Message, error) {
	messages := []*models.Message{}
	if err := chr.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", userA, userB, userB, userA).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, errs.Storage(pkgerrors.Wrap(err, "get messages"))
	}
	return messages, nil
}

func (chr *ChatRepository) MarkMessagesSeen(ctx context.Context, receiverID string, messageIDs []string) (int64, error) {
	if len(messageIDs) == 0 {
		return 0, nil
	}
	// Only the receiver may flip the flag, and only once.
	result := chr.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id IN ? AND receiver_id = ? AND seen = ?", messageIDs, receiverID, false).
		Update("seen", true)
	if result.Error != nil {
		return 0, errs.Storage(pkgerrors.Wrap(result.Error, "mark messages seen"))
	}
	return result.RowsAffected, nil
}

func (chr *ChatRepository) CountUnseenBySender(ctx context.Context, receiverID string) (map[string]int64, error) {
	var rows []struct {
		SenderID string
		Count    int64
	}
	if err := chr.db.WithContext(ctx).
		Model(&models.Message{}).
		Select("sender_id, COUNT(*) AS count").
		Where("receiver_id = ? AND seen = ?", receiverID, false).
		Group("sender_id").
		Scan(&rows).Error; err != nil {
		return nil, errs.Storage(pkgerrors.Wrap(err, "count unseen messages"))
	}

	unseen := make(map[string]int64, len(rows))
	for _, row := range rows {
		unseen[row.SenderID] = row.Count
	}
	return unseen, nil
}

func (chr *ChatRepository) DeleteUserMessages(ctx context.Context, userID string) (int64, error) {
	result := chr.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Delete(&models.Message{})
	if result.Error != nil {
		return 0, errs.Storage(pkgerrors.Wrap(result.Error, "delete user messages"))
	}
	return result.RowsAffected, nil
}
