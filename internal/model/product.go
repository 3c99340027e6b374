package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	Preview     string  `json:"preview"`
	Price       float64 `json:"price" gorm:"type:decimal(8,2);not null"`

	CategoryID uint `json:"category_id" gorm:"not null"`
	UserID     uint `json:"user_id"`

	CreationDate   time.Time `json:"creation_date"`
	LastChangeDate time.Time `json:"last_change_date"`

	ActiveVersionID *uint `json:"active_version_id"`

	// İlişkiler
	Category      Category  `json:"category" gorm:"foreignKey:CategoryID"`
	User          User      `json:"-" gorm:"foreignKey:UserID"`
	ActiveVersion *Version  `json:"active_version" gorm:"foreignKey:ActiveVersionID"`
	Versions      []Version `json:"versions" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

type Version struct {
	gorm.Model
	ProductID     uint   `json:"product_id" gorm:"index"`
	VersionNumber int    `json:"version_number" gorm:"not null"`
	VersionName   string `json:"version_name"`
	IsCurrent     bool   `json:"is_current" gorm:"default:false"`

	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}

// BeforeSave sets the creation date once and refreshes the change date on
// every write.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	now := time.Now()
	if p.CreationDate.IsZero() {
		p.CreationDate = now
	}
	p.LastChangeDate = now
	return nil
}

// PromoteVersion makes version the current one for product as a single
// transaction: the previously current version is demoted first, then the
// product's active version pointer is moved. At most one version per
// product stays current.
func PromoteVersion(db *gorm.DB, product *Product, version *Version) error {
	if version.ProductID != product.ID {
		return fmt.Errorf("version %d does not belong to product %d", version.ID, product.ID)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var current Version
		err := tx.Where("product_id = ? AND is_current = ? AND id <> ?",
			product.ID, true, version.ID).First(&current).Error
		if err == nil {
			if err := tx.Model(&current).Update("is_current", false).Error; err != nil {
				return err
			}
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := tx.Model(version).Update("is_current", true).Error; err != nil {
			return err
		}
		version.IsCurrent = true

		if err := tx.Model(product).Update("active_version_id", version.ID).Error; err != nil {
			return err
		}
		product.ActiveVersionID = &version.ID
		return nil
	})
}
