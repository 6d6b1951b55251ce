package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Frame is a single conversation entry. Frames are a reserved extension
// point: every chat carries the field, and no current operation writes it.
type Frame struct {
	FrameIndex int      `bson:"frame_index" json:"frame_index"`
	Timestamp  *float64 `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}

// Chat is a conversation record owned by a user. ChatID is a random UUID,
// independent of the store-assigned identifier. UserID is not validated
// against an existing user.
type Chat struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ChatID    string             `bson:"chat_id" json:"chat_id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	ChatName  string             `bson:"chat_name" json:"chat_name"`
	Frames    []Frame            `bson:"frames" json:"frames"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
