package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is a registered restaurant owner. Email is unique across all
// accounts and doubles as the login key. Accounts are created on
// registration and never updated or deleted by any route.
type Account struct {
	ID          primitive.ObjectID `bson:"_id"`
	Email       string             `bson:"email"`
	Password    string             `bson:"password"` // bcrypt hash, never the raw credential
	Name        string             `bson:"name"`
	Address     string             `bson:"address"`
	Mobile      string             `bson:"mobile"`
	Description string             `bson:"description"`
	Cuisine     string             `bson:"cuisine"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// MenuItem is one dish. Every item belongs to exactly one account via
// RestaurantID; an account may own zero or many items.
type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id"`
	RestaurantID primitive.ObjectID `bson:"restaurantId"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description"`
	Price        float64            `bson:"price"`
	IsAvailable  bool               `bson:"isAvailable"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// Order exists in storage but no route produces or consumes it. The
// shape is kept so existing order documents stay readable.
type Order struct {
	ID           primitive.ObjectID `bson:"_id"`
	OrderTime    string             `bson:"orderTime"`
	OrderDetails string             `bson:"orderDetails"`
	OrderTotal   string             `bson:"orderTotal"`
	OrderStatus  string             `bson:"orderStatus"`
}
