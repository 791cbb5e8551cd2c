package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saravpatel/foodify/internal/models"
)

func (s *Store) menu() *mongo.Collection {
	return s.db.Collection("menus")
}

func (s *Store) CreateItem(ctx context.Context, item *models.MenuItem) error {
	_, err := s.menu().InsertOne(ctx, item)
	return err
}

func (s *Store) ListItemsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.MenuItem, error) {
	cursor, err := s.menu().Find(ctx, bson.D{{Key: "restaurantId", Value: ownerID}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetItem(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.menu().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem replaces the mutable fields wholesale. There is no version
// field; concurrent edits of the same item are last-write-wins.
func (s *Store) UpdateItem(ctx context.Context, item *models.MenuItem) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: item.Name},
		{Key: "description", Value: item.Description},
		{Key: "price", Value: item.Price},
		{Key: "isAvailable", Value: item.IsAvailable},
	}}}
	res, err := s.menu().UpdateOne(ctx, bson.D{{Key: "_id", Value: item.ID}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.menu().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	return err
}
