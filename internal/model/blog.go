package model

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type BlogPost struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Slug        string `json:"slug" gorm:"index"`
	Content     string `json:"content" gorm:"type:text"`
	Preview     string `json:"preview"`
	IsPublished bool   `json:"is_published" gorm:"default:true"`
	ViewsCount  int    `json:"views_count" gorm:"default:0"`
}

// BeforeCreate her yeni yazıyı yayınlanmış olarak işaretler.
func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	b.IsPublished = true
	return nil
}

// BeforeSave derives the slug from the title. slug.Make transliterates
// non-latin titles, so the same title always yields the same slug.
func (b *BlogPost) BeforeSave(tx *gorm.DB) error {
	b.Slug = slug.Make(b.Title)
	return nil
}
