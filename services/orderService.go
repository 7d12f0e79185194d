package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/okothpaul/shopkart-api/models"
)

func generateOrderReference() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout converts every cart row of the user into a confirmed order and
// empties the cart, all inside one transaction. Either all orders exist and
// the cart is cleared, or nothing changed. The order total is snapshotted
// from the product price at this instant.
func Checkout(db *gorm.DB, userID uint, shippingAddress, paymentMethod string) ([]models.Order, error) {
	var orders []models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Product").Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		for _, item := range items {
			order := models.Order{
				Reference:       generateOrderReference(),
				UserID:          userID,
				ProductID:       item.ProductID,
				Quantity:        item.Quantity,
				TotalPrice:      item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
				Status:          models.OrderStatusConfirmed,
				ShippingAddress: shippingAddress,
				PaymentMethod:   paymentMethod,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			order.Product = item.Product
			orders = append(orders, order)
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// ListOrders returns the user's order history, newest first.
func ListOrders(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Product").Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error
	return orders, err
}

// GetOrder fetches a single order, refusing cross-user access.
func GetOrder(db *gorm.DB, orderID, userID uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Product").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrForbidden
	}
	return &order, nil
}
