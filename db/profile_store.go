package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quizmaster/models"
	"quizmaster/services"
)

// ProfileStore persists user profiles in the "profiles" collection,
// one document per email.
type ProfileStore struct {
	coll *mongo.Collection
}

func NewProfileStore(database *mongo.Database) *ProfileStore {
	return &ProfileStore{coll: database.Collection("profiles")}
}

func (s *ProfileStore) GetProfile(ctx context.Context, email string) (*models.User, error) {
	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := s.coll.FindOne(dbCtx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &user, nil
}

func (s *ProfileStore) SaveProfile(ctx context.Context, user *models.User) error {
	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	user.UpdatedAt = time.Now()
	_, err := s.coll.ReplaceOne(
		dbCtx,
		bson.M{"email": user.Email},
		user,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
