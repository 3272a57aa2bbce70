package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media records an uploaded file stored in MongoDB. Posts and profiles keep
// only the Path reference; the bytes live under the configured media dir.
type Media struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FileName     string             `json:"file_name" bson:"file_name"` // server-generated, unique
	OriginalName string             `json:"original_name" bson:"original_name"`
	ContentType  string             `json:"content_type" bson:"content_type"`
	Size         int64              `json:"size" bson:"size"`
	OwnerID      uint               `json:"owner_id" bson:"owner_id"` // owning profile id
	Path         string             `json:"path" bson:"path"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}
