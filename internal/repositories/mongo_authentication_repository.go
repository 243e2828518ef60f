package repositories

import (
	"context"
	"errors"
	"time"

	"duoChat/internal/errs"
	"duoChat/internal/interfaces"
	"duoChat/internal/models"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

var _ interfaces.AccountRepository = (*MongoAuthenticationRepository)(nil)

// MongoAuthenticationRepository is the document Account Store.
type MongoAuthenticationRepository struct {
	users *mongo.Collection
}

func NewMongoAuthenticationRepository(db *mongo.Database) *MongoAuthenticationRepository {
	return &MongoAuthenticationRepository{
		users: db.Collection(usersCollection),
	}
}

func (mr *MongoAuthenticationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := mr.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}},
	})
	return pkgerrors.Wrap(err, "create user indexes")
}

func (mr *MongoAuthenticationRepository) CreateUser(ctx context.Context, user *models.User) error {
	if _, err := mr.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.Conflict(errs.ErrAccountAlreadyExists)
		}
		return errs.Storage(pkgerrors.Wrap(err, "create user"))
	}
	return nil
}

func (mr *MongoAuthenticationRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return mr.findOne(ctx, bson.M{"email": email})
}

func (mr *MongoAuthenticationRepository) FindUserById(ctx context.Context, id string) (*models.User, error) {
	return mr.findOne(ctx, bson.M{"_id": id})
}

func (mr *MongoAuthenticationRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := mr.users.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound(errs.ErrUserNotFound)
		}
		return nil, errs.Storage(pkgerrors.Wrap(err, "find user"))
	}
	return &user, nil
}

func (mr *MongoAuthenticationRepository) ListUsersExcept(ctx context.Context, id string) ([]*models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := mr.users.Find(ctx, bson.M{"_id": bson.M{"$ne": id}}, opts)
	if err != nil {
		return nil, errs.Storage(pkgerrors.Wrap(err, "list users"))
	}

	users := []*models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errs.Storage(pkgerrors.Wrap(err, "decode users"))
	}
	return users, nil
}

func (mr *MongoAuthenticationRepository) UpdateUser(ctx context.Context, id string, changes models.ProfileChanges) (*models.User, error) {
	if changes.IsEmpty() {
		return mr.FindUserById(ctx, id)
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if changes.FullName != nil {
		set["fullName"] = *changes.FullName
	}
	if changes.Bio != nil {
		set["bio"] = *changes.Bio
	}
	if changes.ProfilePic != nil {
		set["profilePic"] = *changes.ProfilePic
	}

	var user models.User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := mr.users.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound(errs.ErrUserNotFound)
		}
		return nil, errs.Storage(pkgerrors.Wrap(err, "update user"))
	}
	return &user, nil
}

func (mr *MongoAuthenticationRepository) DeleteUser(ctx context.Context, id string) error {
	result, err := mr.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errs.Storage(pkgerrors.Wrap(err, "delete user"))
	}
	if result.DeletedCount == 0 {
		return errs.NotFound(errs.ErrUserNotFound)
	}
	return nil
}
