package models

import "time"

// Question is a buyer's inquiry on an advert. A question moves from
// unanswered to answered exactly once; there is no edit or retraction.
type Question struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AdvertID  uint      `gorm:"not null;index" json:"advert_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	User   User    `gorm:"foreignKey:UserID" json:"user"`
	Answer *Answer `gorm:"foreignKey:QuestionID" json:"answer,omitempty"`
}

// Answer is the advert owner's single reply to a question.
// The unique index on QuestionID enforces the one-answer invariant.
type Answer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"not null;uniqueIndex" json:"question_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
