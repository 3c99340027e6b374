package model

import "gorm.io/gorm"

// Contact is a visitor-submitted inquiry. Rows are created by the public
// contact form and never updated afterwards.
type Contact struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Message string `json:"message" gorm:"type:text"`
}
