package model

import "time"

// Comment is a user review of a place. The author (UserID) is immutable
// once created; only CommentText may be edited afterwards.
type Comment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PlaceID     uint      `json:"place_id" gorm:"not null;index"`
	UserID      uint      `json:"user_id" gorm:"not null"`
	CommentText string    `json:"comment_text" gorm:"not null"`
	Score       float64   `json:"score" gorm:"type:numeric(3,1)"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations enforce the referential constraints at the datastore.
	Place Place `json:"-" gorm:"foreignKey:PlaceID"`
	User  User  `json:"-" gorm:"foreignKey:UserID"`
}

// CommentWithAuthor is a comment row joined with the author's username,
// as returned by the public listing.
type CommentWithAuthor struct {
	ID          uint      `json:"id"`
	CommentText string    `json:"comment_text"`
	Score       float64   `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
	Username    string    `json:"username"`
	UserID      uint      `json:"user_id"`
}
