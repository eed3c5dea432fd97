package models

import "time"

type AuditLog struct {
	ID string `bson:"_id" json:"id"`

	UserID string `bson:"userId,omitempty" json:"userId,omitempty"`
	Action string `bson:"action" json:"action"`

	Entity   string `bson:"entity" json:"entity"`
	EntityID string `bson:"entityId,omitempty" json:"entityId,omitempty"`
	Metadata string `bson:"metadata,omitempty" json:"metadata,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
