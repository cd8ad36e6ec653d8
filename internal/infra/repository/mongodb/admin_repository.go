package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/northwestmeats/storefront/internal/infra/repository"
	"github.com/northwestmeats/storefront/internal/model"
)

type AdminRepository struct {
	coll *mongo.Collection
}

func (r *AdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	admin.CreatedAt = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateKey
		}
		return err
	}
	admin.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var admin model.Admin
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{
		"$or": bson.A{
			bson.M{"username": username},
			bson.M{"email": email},
		},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
