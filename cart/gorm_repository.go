package cart

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/samadhii99/Shopping-Store/models"
)

// cartRecord is the persisted shape of a session cart.
type cartRecord struct {
	CartID    uint   `gorm:"primaryKey"`
	SessionID string `gorm:"uniqueIndex"` // one cart per session
	Open      bool
	Items     []cartItemRecord `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (cartRecord) TableName() string { return "carts" }

// cartItemRecord flattens the product snapshot into columns. Colors are
// comma-joined; none of the catalog colors contain commas.
type cartItemRecord struct {
	ID               uint `gorm:"primaryKey"`
	CartID           uint `gorm:"index"`
	ProductID        uint
	ProductName      string
	Brand            string
	SalePrice        float64
	InstallmentPrice float64
	Image            string
	Colors           string
	InStock          bool
	Category         string
	SelectedColor    string
	Quantity         int
	AddedAt          time.Time
}

func (cartItemRecord) TableName() string { return "cart_items" }

// GormRepository stores carts in postgres via GORM.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) (*GormRepository, error) {
	if err := db.AutoMigrate(&cartRecord{}, &cartItemRecord{}); err != nil {
		return nil, err
	}
	return &GormRepository{db: db}, nil
}

func (r *GormRepository) Load(sessionID string) (*models.Cart, error) {
	var rec cartRecord
	err := r.db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Where("session_id = ?", sessionID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	c := &models.Cart{
		SessionID: rec.SessionID,
		Open:      rec.Open,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	for _, item := range rec.Items {
		var colors []string
		if item.Colors != "" {
			colors = strings.Split(item.Colors, ",")
		}
		c.Items = append(c.Items, models.CartItem{
			Product: models.Product{
				ID:               item.ProductID,
				Name:             item.ProductName,
				Brand:            item.Brand,
				SalePrice:        item.SalePrice,
				InstallmentPrice: item.InstallmentPrice,
				Image:            item.Image,
				Colors:           colors,
				InStock:          item.InStock,
				Category:         item.Category,
			},
			SelectedColor: item.SelectedColor,
			Quantity:      item.Quantity,
			AddedAt:       item.AddedAt,
		})
	}
	return c, nil
}

// Save replaces the stored cart wholesale. Carts are small, so rewriting the
// item rows on every mutation is simpler than diffing.
func (r *GormRepository) Save(cart *models.Cart) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var rec cartRecord
		err := tx.Where("session_id = ?", cart.SessionID).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec = cartRecord{SessionID: cart.SessionID, CreatedAt: cart.CreatedAt}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		rec.Open = cart.Open
		rec.UpdatedAt = cart.UpdatedAt
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", rec.CartID).Delete(&cartItemRecord{}).Error; err != nil {
			return err
		}
		for _, item := range cart.Items {
			row := cartItemRecord{
				CartID:           rec.CartID,
				ProductID:        item.ID,
				ProductName:      item.Name,
				Brand:            item.Brand,
				SalePrice:        item.SalePrice,
				InstallmentPrice: item.InstallmentPrice,
				Image:            item.Image,
				Colors:           strings.Join(item.Colors, ","),
				InStock:          item.InStock,
				Category:         item.Category,
				SelectedColor:    item.SelectedColor,
				Quantity:         item.Quantity,
				AddedAt:          item.AddedAt,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepository) Delete(sessionID string) error {
	return r.db.Where("session_id = ?", sessionID).Delete(&cartRecord{}).Error
}
