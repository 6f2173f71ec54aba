package models

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	Post      Post      `json:"post,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	Author    User      `json:"author,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentForm struct {
	Text string `form:"text" binding:"required"`
}
