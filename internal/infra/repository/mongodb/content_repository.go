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

// Carousel and marquee repositories share the same find/update/delete shape;
// both sort by the order field ascending on every list.

var byOrderAsc = options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

type CarouselRepository struct {
	coll *mongo.Collection
}

func (r *CarouselRepository) ListActive(ctx context.Context) ([]model.CarouselSlide, error) {
	return r.find(ctx, bson.M{"active": true})
}

func (r *CarouselRepository) ListAll(ctx context.Context) ([]model.CarouselSlide, error) {
	return r.find(ctx, bson.M{})
}

func (r *CarouselRepository) find(ctx context.Context, filter bson.M) ([]model.CarouselSlide, error) {
	cursor, err := r.coll.Find(ctx, filter, byOrderAsc)
	if err != nil {
		return nil, err
	}
	var slides []model.CarouselSlide
	if err := cursor.All(ctx, &slides); err != nil {
		return nil, err
	}
	return slides, nil
}

func (r *CarouselRepository) Create(ctx context.Context, slide *model.CarouselSlide) error {
	now := time.Now().UTC()
	slide.CreatedAt = now
	slide.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, slide)
	if err != nil {
		return err
	}
	slide.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *CarouselRepository) Update(ctx context.Context, id string, update repository.CarouselUpdate) (*model.CarouselSlide, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Link != nil {
		set["link"] = *update.Link
	}
	if update.Order != nil {
		set["order"] = *update.Order
	}
	if update.Active != nil {
		set["active"] = *update.Active
	}

	var slide model.CarouselSlide
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&slide)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &slide, nil
}

func (r *CarouselRepository) Delete(ctx context.Context, id string) error {
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

type MarqueeRepository struct {
	coll *mongo.Collection
}

func (r *MarqueeRepository) ListActive(ctx context.Context) ([]model.MarqueeItem, error) {
	return r.find(ctx, bson.M{"active": true})
}

func (r *MarqueeRepository) ListAll(ctx context.Context) ([]model.MarqueeItem, error) {
	return r.find(ctx, bson.M{})
}

func (r *MarqueeRepository) find(ctx context.Context, filter bson.M) ([]model.MarqueeItem, error) {
	cursor, err := r.coll.Find(ctx, filter, byOrderAsc)
	if err != nil {
		return nil, err
	}
	var items []model.MarqueeItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MarqueeRepository) Create(ctx context.Context, item *model.MarqueeItem) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return err
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MarqueeRepository) Update(ctx context.Context, id string, update repository.MarqueeUpdate) (*model.MarqueeItem, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Text != nil {
		set["text"] = *update.Text
	}
	if update.Order != nil {
		set["order"] = *update.Order
	}
	if update.Active != nil {
		set["active"] = *update.Active
	}

	var item model.MarqueeItem
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *MarqueeRepository) Delete(ctx context.Context, id string) error {
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
