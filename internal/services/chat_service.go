package services

import (
	"context"
	"duoChat/internal/enums"
	"duoChat/internal/errs"
	"duoChat/internal/interfaces"
	"duoChat/internal/logger"
	"duoChat/internal/models"
	"duoChat/internal/utils"
	"duoChat/internal/validators"
	"strings"
	"time"

	"go.uber.org/zap"
)

type ChatService struct {
	chatRepo    interfaces.MessageRepository
	authRepo    interfaces.AccountRepository
	fileManager *FileManagerService
	presence    interfaces.PresenceLookup
}

func NewChatService(
	chatRepo interfaces.MessageRepository,
	authRepo interfaces.AccountRepository,
	fileManager *FileManagerService,
	presence interfaces.PresenceLookup,
) *ChatService {
	return &ChatService{
		chatRepo:    chatRepo,
		authRepo:    authRepo,
		fileManager: fileManager,
		presence:    presence,
	}
}

// ListPeers returns every other account plus, per sender, how many messages
// to me are still unseen.
func (cs *ChatService) ListPeers(ctx context.Context, me string) ([]*models.User, map[string]int64, error) {
	users, err := cs.authRepo.ListUsersExcept(ctx, me)
	if err != nil {
		return nil, nil, err
	}
	unseen, err := cs.chatRepo.CountUnseenBySender(ctx, me)
	if err != nil {
		return nil, nil, err
	}
	return users, unseen, nil
}

// FetchHistory returns the conversation between me and peer, oldest first.
// Reading it marks every message addressed to me as seen.
func (cs *ChatService) FetchHistory(ctx context.Context, me, peer string) ([]*models.Message, error) {
	messages, err := cs.chatRepo.GetMessagesBetween(ctx, me, peer)
	if err != nil {
		return nil, err
	}

	var unseen []*models.Message
	for _, message := range messages {
		if message.ReceiverID == me && !message.Seen {
			unseen = append(unseen, message)
		}
	}
	if len(unseen) == 0 {
		return messages, nil
	}

	ids := make([]string, len(unseen))
	for i, message := range unseen {
		ids[i] = message.ID
	}
	if _, err := cs.chatRepo.MarkMessagesSeen(ctx, me, ids); err != nil {
		return nil, err
	}
	for _, message := range unseen {
		message.Seen = true
	}
	return messages, nil
}

// Send stores a message from sender to recipient and pushes it to the
// recipient when they are connected. The push is best effort.
func (cs *ChatService) Send(ctx context.Context, sender, recipient string, body *models.SendMessageRequestBody) (*models.Message, error) {
	if err := validators.ValidateMessage(body); err != nil {
		return nil, errs.Validation(err)
	}
	if _, err := cs.authRepo.FindUserById(ctx, recipient); err != nil {
		return nil, err
	}

	image, err := cs.fileManager.ResolveImage(ctx, sender, strings.TrimSpace(body.Image), enums.FILE_BUCKET_MESSAGE_IMAGE)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	message := &models.Message{
		ID:         utils.NewId(),
		SenderID:   sender,
		ReceiverID: recipient,
		Text:       strings.TrimSpace(body.Text),
		Image:      image,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := cs.chatRepo.SaveMessage(ctx, message); err != nil {
		return nil, err
	}

	if handle, ok := cs.presence.Lookup(recipient); ok {
		if err := handle.Push(enums.SOCKET_EVENT_NEW_MESSAGE, message); err != nil {
			logger.Warn("live delivery failed",
				zap.String("message_id", message.ID),
				zap.String("receiver_id", recipient),
				zap.Error(err),
			)
		}
	}
	return message, nil
}

// MarkSeen flips one message to seen when me is its recipient. Anything
// else is silently ignored.
func (cs *ChatService) MarkSeen(ctx context.Context, me, messageID string) error {
	if messageID == "" {
		return errs.Validation(errs.ErrInvalidMessageId)
	}
	_, err := cs.chatRepo.MarkMessagesSeen(ctx, me, []string{messageID})
	return err
}
