package store

import "go.mongodb.org/mongo-driver/mongo"

const ordersCollection = "orders"

// orders is modeled in storage but reached by no route. The accessor
// exists so EnsureIndexes can keep the collection present; do not build
// an order workflow on top of it without a product decision.
func (s *Store) orders() *mongo.Collection {
	return s.db.Collection(ordersCollection)
}
