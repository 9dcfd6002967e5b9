package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Allowed coursework statuses. Anything else falls back to StatusOngoing.
const (
	StatusCompleted = "Completed"
	StatusOngoing   = "Ongoing"
	StatusUpcoming  = "Upcoming"
)

var CourseworkStatuses = []string{StatusCompleted, StatusOngoing, StatusUpcoming}

type Coursework struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Code        *string            `json:"code" bson:"code"`
	Description *string            `json:"description" bson:"description"`
	Instructor  *string            `json:"instructor" bson:"instructor"`
	Status      string             `json:"status" bson:"status"`
	Tags        []string           `json:"tags" bson:"tags"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CourseworkInput struct {
	Title       string          `json:"title"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Instructor  string          `json:"instructor"`
	Status      string          `json:"status"`
	Tags        json.RawMessage `json:"tags"`
	UserEmail   string          `json:"userEmail"`
}
