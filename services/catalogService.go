package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/okothpaul/shopkart-api/models"
)

// ListProducts returns the catalog, optionally limited to one category
// (categoryID 0 means all).
func ListProducts(db *gorm.DB, categoryID uint) ([]models.Product, error) {
	query := db.Order("id asc")
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	var products []models.Product
	err := query.Find(&products).Error
	return products, err
}

// SearchProducts matches the product name case-insensitively against the
// query. An empty query returns the whole catalog.
func SearchProducts(db *gorm.DB, query string) ([]models.Product, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return ListProducts(db, 0)
	}
	var products []models.Product
	err := db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%").Order("id asc").Find(&products).Error
	return products, err
}

func GetProduct(db *gorm.DB, productID uint) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("id asc").Find(&categories).Error
	return categories, err
}

func CreateProduct(db *gorm.DB, product *models.Product) error {
	if product.Price.IsNegative() {
		return ErrNegativePrice
	}
	var category models.Category
	if err := db.First(&category, product.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return db.Create(product).Error
}

func CreateCategory(db *gorm.DB, category *models.Category) error {
	if err := db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCategoryNameTaken
		}
		return err
	}
	return nil
}

// DeleteCategory removes a category. A category that still has products is
// only deleted when cascade is enabled; the cascade then takes the products
// and their cart and order rows along, all in one transaction.
func DeleteCategory(db *gorm.DB, categoryID uint, cascade bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}

		var productIDs []uint
		if err := tx.Model(&models.Product{}).Where("category_id = ?", categoryID).Pluck("id", &productIDs).Error; err != nil {
			return err
		}

		if len(productIDs) > 0 {
			if !cascade {
				return ErrCategoryNotEmpty
			}
			if err := tx.Where("product_id IN ?", productIDs).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id IN ?", productIDs).Delete(&models.Order{}).Error; err != nil {
				return err
			}
			if err := tx.Where("category_id = ?", categoryID).Delete(&models.Product{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&category).Error
	})
}
