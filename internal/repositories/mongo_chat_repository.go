package repositories

import (
	"context"
	"time"

	"duoChat/internal/errs"
	"duoChat/internal/interfaces"
	"duoChat/internal/models"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const messagesCollection = "messages"

var _ interfaces.MessageRepository = (*MongoChatRepository)(nil)

// MongoChatRepository is the document Message Store.
type MongoChatRepository struct {
	messages *mongo.Collection
}

func NewMongoChatRepository(db *mongo.Database) *MongoChatRepository {
	return &MongoChatRepository{
		messages: db.Collection(messagesCollection),
	}
}

func (mr *MongoChatRepository) EnsureIndexes(ctx context.Context) error {
	_, err := mr.messages.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "senderId", Value: 1}, {Key: "receiverId", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "receiverId", Value: 1}, {Key: "seen", Value: 1}}},
	})
	return pkgerrors.Wrap(err, "create message indexes")
}

func (mr *MongoChatRepository) SaveMessage(ctx context.Context, message *models.Message) error {
	if _, err := mr.messages.InsertOne(ctx, message); err != nil {
		return errs.Storage(pkgerrors.Wrap(err, "save message"))
	}
	return nil
}

func (mr *MongoChatRepository) GetMessagesBetween(ctx context.Context, userA, userB string) ([]*models.Message, error) {
	filter := bson.M{"$or": []bson.M{
		{"senderId": userA, "receiverId": userB},
		{"senderId": userB, "receiverId": userA},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := mr.messages.Find(ctx, filter, opts)
	if err != nil {
		return nil, errs.Storage(pkgerrors.Wrap(err, "get messages"))
	}

	messages := []*models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, errs.Storage(pkgerrors.Wrap(err, "decode messages"))
	}
	return messages, nil
}

func (mr *MongoChatRepository) MarkMessagesSeen(ctx context.Context, receiverID string, messageIDs []string) (int64, error) {
	if len(messageIDs) == 0 {
		return 0, nil
	}
	filter := bson.M{
		"_id":        bson.M{"$in": messageIDs},
		"receiverId": receiverID,
		"seen":       false,
	}
	update := bson.M{"$set": bson.M{"seen": true, "updatedAt": time.Now().UTC()}}

	result, err := mr.messages.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, errs.Storage(pkgerrors.Wrap(err, "mark messages seen"))
	}
	return result.ModifiedCount, nil
}

func (mr *MongoChatRepository) CountUnseenBySender(ctx context.Context, receiverID string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"receiverId": receiverID, "seen": false}}},
		{{Key: "$group", Value: bson.M{"_id": "$senderId", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := mr.messages.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errs.Storage(pkgerrors.Wrap(err, "count unseen messages"))
	}

	var rows []struct {
		SenderID string `bson:"_id"`
		Count    int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errs.Storage(pkgerrors.Wrap(err, "decode unseen counts"))
	}

	unseen := make(map[string]int64, len(rows))
	for _, row := range rows {
		unseen[row.SenderID] = row.Count
	}
	return unseen, nil
}

func (mr *MongoChatRepository) DeleteUserMessages(ctx context.Context, userID string) (int64, error) {
	filter := bson.M{"$or": []bson.M{{"senderId": userID}, {"receiverId": userID}}}
	result, err := mr.messages.DeleteMany(ctx, filter)
	if err != nil {
		return 0, errs.Storage(pkgerrors.Wrap(err, "delete user messages"))
	}
	return result.DeletedCount, nil
}
