package models

import "time"

type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:256;not null"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	PubDate     time.Time `json:"pub_date" gorm:"not null;index"`
	AuthorID    uint      `json:"author_id" gorm:"not null;index"`
	Author      User      `json:"author,omitempty"`
	LocationID  *uint     `json:"location_id"`
	Location    *Location `json:"location,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	CategoryID  *uint     `json:"category_id" gorm:"index"`
	Category    *Category `json:"category,omitempty"`
	Image       string    `json:"image"`
	IsPublished bool      `json:"is_published" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`

	// Filled by listing queries, never stored.
	CommentCount int64 `json:"comment_count" gorm:"->;-:migration"`
}

func (p *Post) String() string {
	return p.Title
}

type PostForm struct {
	Title       string    `form:"title" binding:"required,max=256"`
	Text        string    `form:"text" binding:"required"`
	PubDate     time.Time `form:"pub_date" time_format:"2006-01-02T15:04" binding:"required"`
	LocationID  *uint     `form:"location"`
	CategoryID  *uint     `form:"category"`
	IsPublished bool      `form:"is_published"`
}

// Normalize maps the empty select options, which bind as pointers to
// zero, back to nil references.
func (f *PostForm) Normalize() {
	if f.LocationID != nil && *f.LocationID == 0 {
		f.LocationID = nil
	}
	if f.CategoryID != nil && *f.CategoryID == 0 {
		f.CategoryID = nil
	}
}
