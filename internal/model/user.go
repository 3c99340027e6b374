package model

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`

	// Opsiyonel profil bilgileri
	Phone   string `json:"phone"`
	Avatar  string `json:"avatar"`
	Country string `json:"country"`

	// Sistem bilgileri
	VerificationToken string `json:"-"`
	IsVerified        bool   `json:"is_verified" gorm:"default:false"`

	// İlişkiler
	Products []Product `json:"-"`
}

func (u *User) GetPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":          u.ID,
		"email":       u.Email,
		"phone":       u.Phone,
		"avatar":      u.Avatar,
		"country":     u.Country,
		"is_verified": u.IsVerified,
	}
}
