package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	apperrors "cooking/internal/errors"
	"cooking/internal/model"
)

// UserRepository defines persistence operations over the users collection.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	Insert(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	Replace(ctx context.Context, user *model.User) error
	FindAndDelete(ctx context.Context, id bson.ObjectID) (*model.User, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository builds a MongoDB-backed repository.
func NewUserRepository(database *mongo.Database) UserRepository {
	return &userRepository{coll: database.Collection("users")}
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Insert(ctx context.Context, user *model.User) error {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if !res.Acknowledged {
		return apperrors.ErrWriteNotAcknowledged
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Replace(ctx context.Context, user *model.User) error {
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: user.ID}}, user)
	if err != nil {
		return err
	}
	if !res.Acknowledged {
		return apperrors.ErrWriteNotAcknowledged
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) FindAndDelete(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var user model.User
	err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
