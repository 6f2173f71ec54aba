package models

import "time"

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:256;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	IsPublished bool      `json:"is_published" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	Posts       []Post    `json:"posts,omitempty" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (c *Category) String() string {
	return c.Title
}
