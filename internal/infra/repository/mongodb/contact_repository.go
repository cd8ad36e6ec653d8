package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/northwestmeats/storefront/internal/infra/repository"
	"github.com/northwestmeats/storefront/internal/model"
)

type ContactRepository struct {
	coll *mongo.Collection
}

func (r *ContactRepository) List(ctx context.Context) ([]model.ContactInquiry, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var inquiries []model.ContactInquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *ContactRepository) Get(ctx context.Context, id string) (*model.ContactInquiry, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var inquiry model.ContactInquiry
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&inquiry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *ContactRepository) Create(ctx context.Context, inquiry *model.ContactInquiry) error {
	now := time.Now().UTC()
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, inquiry)
	if err != nil {
		return err
	}
	inquiry.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ContactRepository) Update(ctx context.Context, id string, update repository.ContactUpdate) (*model.ContactInquiry, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.AdminNotes != nil {
		set["adminNotes"] = *update.AdminNotes
	}

	var inquiry model.ContactInquiry
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&inquiry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
