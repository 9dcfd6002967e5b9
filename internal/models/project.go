package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	Description      string             `json:"description" bson:"description"`
	Image            string             `json:"image" bson:"image"`
	Tags             []string           `json:"tags" bson:"tags"`
	LiveLink         *string            `json:"liveLink" bson:"liveLink"`
	ClientSourceCode *string            `json:"clientSourceCode" bson:"clientSourceCode"`
	ServerSourceCode *string            `json:"serverSourceCode" bson:"serverSourceCode"`
	IsFeatured       bool               `json:"isFeatured" bson:"isFeatured"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProjectInput carries a raw create/update payload. Tags and IsFeatured stay
// raw so malformed values normalize to their defaults instead of failing the
// whole decode.
type ProjectInput struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Image            string          `json:"image"`
	Tags             json.RawMessage `json:"tags"`
	LiveLink         string          `json:"liveLink"`
	ClientSourceCode string          `json:"clientSourceCode"`
	ServerSourceCode string          `json:"serverSourceCode"`
	IsFeatured       json.RawMessage `json:"isFeatured"`
}
