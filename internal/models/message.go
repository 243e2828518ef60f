package models

import "time"

type Message struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"_id"`
	SenderID   string    `gorm:"type:varchar(36);not null;index:idx_messages_pair" bson:"senderId" json:"senderId"`
	ReceiverID string    `gorm:"type:varchar(36);not null;index:idx_messages_pair;index" bson:"receiverId" json:"receiverId"`
	Text       string    `bson:"text,omitempty" json:"text,omitempty"`
	Image      string    `bson:"image,omitempty" json:"image,omitempty"`
	Seen       bool      `gorm:"not null;default:false" bson:"seen" json:"seen"`
	CreatedAt  time.Time `gorm:"index" bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
