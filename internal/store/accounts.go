package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saravpatel/foodify/internal/models"
)

func (s *Store) accounts() *mongo.Collection {
	return s.db.Collection("users")
}

func (s *Store) CreateAccount(ctx context.Context, account *models.Account) error {
	_, err := s.accounts().InsertOne(ctx, account)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := s.accounts().FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// EmailExists is checked before insert so the duplicate surfaces as a
// field error rather than a write failure; the unique index still backs
// the invariant if two registrations race.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := s.accounts().CountDocuments(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
