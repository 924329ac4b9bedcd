package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quizmaster/models"
)

// SavedQuizStore keeps at most one in-progress snapshot per email in
// the "saved_quizzes" collection. Saves overwrite the previous
// snapshot; rewriting the same snapshot is harmless.
type SavedQuizStore struct {
	coll *mongo.Collection
}

func NewSavedQuizStore(database *mongo.Database) *SavedQuizStore {
	return &SavedQuizStore{coll: database.Collection("saved_quizzes")}
}

type savedQuizDoc struct {
	Email string                `bson:"email"`
	State models.SavedQuizState `bson:"state"`
}

func (s *SavedQuizStore) SaveQuiz(ctx context.Context, email string, state models.SavedQuizState) error {
	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.coll.ReplaceOne(
		dbCtx,
		bson.M{"email": email},
		savedQuizDoc{Email: email, State: state},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz snapshot: %w", err)
	}
	return nil
}

func (s *SavedQuizStore) LoadQuiz(ctx context.Context, email string) (*models.SavedQuizState, error) {
	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc savedQuizDoc
	err := s.coll.FindOne(dbCtx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load quiz snapshot: %w", err)
	}
	return &doc.State, nil
}

func (s *SavedQuizStore) ClearQuiz(ctx context.Context, email string) error {
	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.coll.DeleteOne(dbCtx, bson.M{"email": email})
	if err != nil {
		return fmt.Errorf("failed to clear quiz snapshot: %w", err)
	}
	return nil
}
