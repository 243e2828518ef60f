package models

import "time"

// User represents an account. The password hash never leaves the server.
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"_id"`
	FullName     string    `gorm:"not null" bson:"fullName" json:"fullName"`
	Email        string    `gorm:"uniqueIndex;not null" bson:"email" json:"email"`
	Bio          string    `bson:"bio" json:"bio"`
	ProfilePic   string    `bson:"profilePic" json:"profilePic"`
	PasswordHash string    `gorm:"not null" bson:"password" json:"-"`
	CreatedAt    time.Time `gorm:"index" bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProfileChanges holds the fields of a profile update. Nil fields are left untouched.
type ProfileChanges struct {
	FullName   *string
	Bio        *string
	ProfilePic *string
}

func (pc ProfileChanges) IsEmpty() bool {
	return pc.FullName == nil && pc.Bio == nil && pc.ProfilePic == nil
}

// Apply copies the set fields onto user.
func (pc ProfileChanges) Apply(user *User) {
	if pc.FullName != nil {
		user.FullName = *pc.FullName
	}
	if pc.Bio != nil {
		user.Bio = *pc.Bio
	}
	if pc.ProfilePic != nil {
		user.ProfilePic = *pc.ProfilePic
	}
}
