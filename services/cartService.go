package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/okothpaul/shopkart-api/models"
)

// AddCartItem puts one unit of a product into the user's cart. A second add
// for the same product increments the existing row instead of creating a
// duplicate; the (user_id, product_id) unique index backs this up under
// concurrent requests.
func AddCartItem(db *gorm.DB, userID, productID uint) (*models.CartItem, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var item models.CartItem
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err == nil {
		return incrementCartItem(db, &item)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item = models.CartItem{UserID: userID, ProductID: productID, Quantity: 1}
	if err := db.Create(&item).Error; err != nil {
		// A concurrent add won the insert race; fold this one into an
		// increment on the row it created.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.CartItem
			if err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error; err != nil {
				return nil, err
			}
			return incrementCartItem(db, &existing)
		}
		return nil, err
	}
	item.Product = product
	return &item, nil
}

func incrementCartItem(db *gorm.DB, item *models.CartItem) (*models.CartItem, error) {
	if err := db.Model(item).Update("quantity", gorm.Expr("quantity + ?", 1)).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Product").First(item, item.ID).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateCartQuantity sets a line item's quantity exactly. A quantity of zero
// or below removes the row and returns (nil, nil).
func UpdateCartQuantity(db *gorm.DB, cartID, userID uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := db.First(&item, cartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	if item.UserID != userID {
		return nil, ErrForbidden
	}

	if quantity <= 0 {
		if err := db.Delete(&item).Error; err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err := db.Model(&item).Update("quantity", quantity).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Product").First(&item, item.ID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem deletes the row only when it exists and belongs to the
// user. A missing or foreign row is a silent no-op, matching the storefront
// behaviour of treating remove as best-effort.
func RemoveCartItem(db *gorm.DB, cartID, userID uint) error {
	return db.Where("id = ? AND user_id = ?", cartID, userID).Delete(&models.CartItem{}).Error
}

// ListCartItems returns the user's cart rows with product data attached,
// in insertion order.
func ListCartItems(db *gorm.DB, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Preload("Product").Where("user_id = ?", userID).Order("id asc").Find(&items).Error
	return items, err
}

// CartTotalAmount sums current product price times quantity over the cart.
// Carts are pre-purchase, so the live price applies, not a snapshot.
func CartTotalAmount(db *gorm.DB, userID uint) (decimal.Decimal, error) {
	items, err := ListCartItems(db, userID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}

// CountCartItems counts distinct cart rows, not total units.
func CountCartItems(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
