package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-backend/internal/database"
	"portfolio-backend/internal/models"
)

type CourseworkRepo struct {
	coll *mongo.Collection
}

func NewCourseworkRepo(db *database.Mongo) *CourseworkRepo {
	return &CourseworkRepo{coll: db.Collection("coursework")}
}

func (r *CourseworkRepo) Create(ctx context.Context, c *models.Coursework) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to insert coursework: %w", err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *CourseworkRepo) List(ctx context.Context) ([]*models.Coursework, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query coursework: %w", err)
	}
	defer cursor.Close(ctx)

	items := []*models.Coursework{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode coursework: %w", err)
	}
	return items, nil
}

func (r *CourseworkRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Coursework, error) {
	c := &models.Coursework{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coursework: %w", err)
	}
	return c, nil
}

func (r *CourseworkRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Coursework, error) {
	fields["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	c := &models.Coursework{}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update coursework: %w", err)
	}
	return c, nil
}

func (r *CourseworkRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete coursework: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
