package models

import "time"

// Resume is a singleton document. Link is nil until the first upsert.
type Resume struct {
	Link      *string    `json:"link" bson:"link"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type ResumeInput struct {
	Link      string `json:"link"`
	UserEmail string `json:"userEmail"`
}
