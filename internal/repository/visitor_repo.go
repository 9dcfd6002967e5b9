package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-backend/internal/database"
	"portfolio-backend/internal/models"
)

type VisitorRepo struct {
	coll *mongo.Collection
}

func NewVisitorRepo(db *database.Mongo) *VisitorRepo {
	repo := &VisitorRepo{coll: db.Collection("visitors")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "lastVisit", Value: -1}},
	})

	return repo
}

// RecordHit folds one qualifying page hit into the visitor document keyed by
// the client address. A single atomic upsert keeps concurrent hits from the
// same address accumulating visitCount without a read-modify-write race.
// Every hit opens a fresh session window: sessionStart is reset to the hit
// time, not continued.
func (r *VisitorRepo) RecordHit(ctx context.Context, hit *models.VisitorHit) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": hit.IP}, hitUpdate(hit), options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to record visitor hit: %w", err)
	}
	return nil
}

// AddSessionTime flushes a client-reported session window: the elapsed
// seconds are added to totalTimeSpent and the open window is cleared.
// Duplicate deliveries double-count; there is no compare-and-swap on the
// session identity.
func (r *VisitorRepo) AddSessionTime(ctx context.Context, ip string, seconds int64) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": ip}, flushUpdate(seconds))
	if err != nil {
		return fmt.Errorf("failed to add session time: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// hitUpdate builds the upsert for one page hit. firstVisit and the
// user-agent fields only land on first insert; lastVisit and sessionStart
// advance on every hit.
func hitUpdate(hit *models.VisitorHit) bson.M {
	return bson.M{
		"$inc": bson.M{"visitCount": 1},
		"$set": bson.M{
			"lastVisit":    hit.At,
			"sessionStart": hit.At,
		},
		"$setOnInsert": bson.M{
			"firstVisit":     hit.At,
			"browser":        hit.Browser,
			"device":         hit.Device,
			"os":             hit.OS,
			"path":           hit.Path,
			"totalTimeSpent": int64(0),
		},
	}
}

// flushUpdate builds the session flush: accumulate elapsed seconds and close
// the open window.
func flushUpdate(seconds int64) bson.M {
	return bson.M{
		"$inc":   bson.M{"totalTimeSpent": seconds},
		"$unset": bson.M{"sessionStart": ""},
	}
}

func (r *VisitorRepo) List(ctx context.Context) ([]*models.Visitor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastVisit", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query visitors: %w", err)
	}
	defer cursor.Close(ctx)

	visitors := []*models.Visitor{}
	if err := cursor.All(ctx, &visitors); err != nil {
		return nil, fmt.Errorf("failed to decode visitors: %w", err)
	}
	return visitors, nil
}
