package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"cooking/internal/cache"
	"cooking/internal/model"
	"cooking/internal/repository"
	"cooking/internal/timestamp"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes domain operations on users.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id bson.ObjectID) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id bson.ObjectID) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id bson.ObjectID) string {
	return fmt.Sprintf("user:%s", id.Hex())
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// CreateUser assigns the identifier and registration stamps, fills in the
// default avatar when no image was supplied, and persists the document.
func (s *userService) CreateUser(ctx context.Context, user *model.User) error {
	user.ID = bson.NewObjectID()
	user.DateOfReg = timestamp.Now()
	user.DateOfLastChange = user.DateOfReg
	if user.ImageURL == "" {
		if user.Sex == "f" {
			user.ImageURL = model.DefaultFemaleAvatar
		} else {
			user.ImageURL = model.DefaultMaleAvatar
		}
	}
	return s.repo.Insert(ctx, user)
}

func (s *userService) GetUser(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	key := s.cacheKey(id)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, key, payload, userCacheTTL)
	}
	return user, nil
}

// UpdateUser replaces the stored document in full. The registration stamp is
// carried over from the stored document so it is set exactly once.
func (s *userService) UpdateUser(ctx context.Context, user *model.User) error {
	existing, err := s.repo.FindByID(ctx, user.ID)
	if err != nil {
		return err
	}
	user.DateOfReg = existing.DateOfReg
	user.DateOfLastChange = timestamp.Now()
	if err := s.repo.Replace(ctx, user); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	user, err := s.repo.FindAndDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}
