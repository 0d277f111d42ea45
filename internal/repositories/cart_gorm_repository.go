package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"futurewear/internal/models"
)

// cartItemRow is the persisted form of one cart line. The row id is a plain
// auto-increment primary key so Load can restore lines in insertion order.
type cartItemRow struct {
	RowID     uint `gorm:"primaryKey;autoIncrement"`
	ProductID int
	Name      string
	Price     float64
	Image     string
	Size      string
	Quantity  int
}

func (cartItemRow) TableName() string {
	return "cart_items"
}

// GORMCartRepository is a GORM implementation of CartRepository. It works
// with both the sqlite and postgres drivers; the caller picks the dialect.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository migrates the cart_items table and returns the
// repository.
func NewGORMCartRepository(db *gorm.DB) (*GORMCartRepository, error) {
	if err := db.AutoMigrate(&cartItemRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cart_items: %w", err)
	}
	return &GORMCartRepository{db: db}, nil
}

// Load restores the saved items list in insertion order.
func (r *GORMCartRepository) Load() ([]models.CartItem, error) {
	var rows []cartItemRow
	if err := r.db.Order("row_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}

	items := make([]models.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.CartItem{
			ID:       row.ProductID,
			Name:     row.Name,
			Price:    row.Price,
			Image:    row.Image,
			Size:     row.Size,
			Quantity: row.Quantity,
		})
	}
	return items, nil
}

// Save replaces the whole items list in one transaction.
func (r *GORMCartRepository) Save(items []models.CartItem) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&cartItemRow{}).Error; err != nil {
			return err
		}
		for _, item := range items {
			row := cartItemRow{
				ProductID: item.ID,
				Name:      item.Name,
				Price:     item.Price,
				Image:     item.Image,
				Size:      item.Size,
				Quantity:  item.Quantity,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save cart items: %w", err)
	}
	return nil
}
