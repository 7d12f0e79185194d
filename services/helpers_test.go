package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/okothpaul/shopkart-api/models"
)

// Each test gets its own named in-memory database so parallel connections
// from the pool see the same data without leaking across tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user, err := RegisterUser(db, username, username+"@example.com", "password123")
	require.NoError(t, err)
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func createTestProduct(t *testing.T, db *gorm.DB, categoryID uint, name string, price float64) *models.Product {
	t.Helper()

	product := models.Product{
		Name:       name,
		Price:      decimal.NewFromFloat(price),
		CategoryID: categoryID,
		Stock:      10,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}
