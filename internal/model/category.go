package model

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`

	Products []Product `json:"-" gorm:"foreignKey:CategoryID"`
}
