// Package mongodb implements the repository contracts on top of the official
// MongoDB driver. All cross-request coordination happens here; the services
// above it hold no state of their own.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collProducts  = "products"
	collOrders    = "orders"
	collAdmins    = "admins"
	collContacts  = "contacts"
	collCarousels = "carousels"
	collMarquees  = "marquees"
)

// Store owns the Mongo client and hands out collection-scoped repositories.
// It is constructed once at startup and closed on shutdown.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &Store{
		client: client,
		db:     client.Database(database),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the schema-level constraints: unique admin username
// and email, and the order/active sort indexes on the homepage content
// collections.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(collAdmins).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create admin indexes: %w", err)
	}

	for _, coll := range []string{collCarousels, collMarquees} {
		_, err := s.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "order", Value: 1}, {Key: "active", Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("create %s index: %w", coll, err)
		}
	}
	return nil
}

func (s *Store) Products() *ProductRepository {
	return &ProductRepository{coll: s.db.Collection(collProducts)}
}

func (s *Store) Orders() *OrderRepository {
	return &OrderRepository{coll: s.db.Collection(collOrders)}
}

func (s *Store) Admins() *AdminRepository {
	return &AdminRepository{coll: s.db.Collection(collAdmins)}
}

func (s *Store) Contacts() *ContactRepository {
	return &ContactRepository{coll: s.db.Collection(collContacts)}
}

func (s *Store) Carousels() *CarouselRepository {
	return &CarouselRepository{coll: s.db.Collection(collCarousels)}
}

func (s *Store) Marquees() *MarqueeRepository {
	return &MarqueeRepository{coll: s.db.Collection(collMarquees)}
}
