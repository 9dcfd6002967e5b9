package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-backend/internal/database"
	"portfolio-backend/internal/models"
)

// The resume collection holds a single document upserted in place.
const resumeDocID = "resume"

type ResumeRepo struct {
	coll *mongo.Collection
}

func NewResumeRepo(db *database.Mongo) *ResumeRepo {
	return &ResumeRepo{coll: db.Collection("resume")}
}

// Get returns the singleton document, or a zero Resume (link null) when it
// has never been set.
func (r *ResumeRepo) Get(ctx context.Context) (*models.Resume, error) {
	res := &models.Resume{}
	err := r.coll.FindOne(ctx, bson.M{"_id": resumeDocID}).Decode(res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.Resume{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resume: %w", err)
	}
	return res, nil
}

func (r *ResumeRepo) Upsert(ctx context.Context, link string) (*models.Resume, error) {
	update := bson.M{"$set": bson.M{"link": link, "updatedAt": time.Now().UTC()}}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	res := &models.Resume{}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": resumeDocID}, update, opts).Decode(res)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert resume: %w", err)
	}
	return res, nil
}
