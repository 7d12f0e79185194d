package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okothpaul/shopkart-api/models"
)

func TestSearchProductsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "Groceries")
	createTestProduct(t, db, category.ID, "Indian Spices Kit", 699)
	createTestProduct(t, db, category.ID, "Kitchen Set", 2999)
	createTestProduct(t, db, category.ID, "Yoga Mat", 799)

	products, err := SearchProducts(db, "kit")
	require.NoError(t, err)
	require.Len(t, products, 2)
	names := []string{products[0].Name, products[1].Name}
	assert.Contains(t, names, "Indian Spices Kit")
	assert.Contains(t, names, "Kitchen Set")

	products, err = SearchProducts(db, "KIT")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestSearchProductsEmptyQueryReturnsAll(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "Groceries")
	createTestProduct(t, db, category.ID, "Indian Spices Kit", 699)
	createTestProduct(t, db, category.ID, "Yoga Mat", 799)

	products, err := SearchProducts(db, "")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestListProductsByCategory(t *testing.T) {
	db := newTestDB(t)
	groceries := createTestCategory(t, db, "Groceries")
	sports := createTestCategory(t, db, "Sports")
	createTestProduct(t, db, groceries.ID, "Tea Gift Set", 599)
	createTestProduct(t, db, sports.ID, "Yoga Mat", 799)

	products, err := ListProducts(db, groceries.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tea Gift Set", products[0].Name)

	all, err := ListProducts(db, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListCategories(t *testing.T) {
	db := newTestDB(t)
	createTestCategory(t, db, "Groceries")
	createTestCategory(t, db, "Sports")

	categories, err := ListCategories(db)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestCreateProductNegativePrice(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "Groceries")

	product := models.Product{
		Name:       "Bad Price",
		Price:      decimal.NewFromInt(-1),
		CategoryID: category.ID,
	}
	assert.ErrorIs(t, CreateProduct(db, &product), ErrNegativePrice)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	db := newTestDB(t)

	product := models.Product{
		Name:       "Orphan",
		Price:      decimal.NewFromInt(10),
		CategoryID: 9999,
	}
	assert.ErrorIs(t, CreateProduct(db, &product), ErrCategoryNotFound)
}

func TestDeleteCategoryRefusesWithoutCascade(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "Groceries")
	createTestProduct(t, db, category.ID, "Tea Gift Set", 599)

	assert.ErrorIs(t, DeleteCategory(db, category.ID, false), ErrCategoryNotEmpty)

	// Category and product survive the refused delete.
	categories, err := ListCategories(db)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestDeleteCategoryCascades(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	category := createTestCategory(t, db, "Groceries")
	product := createTestProduct(t, db, category.ID, "Tea Gift Set", 599)

	_, err := AddCartItem(db, user.ID, product.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteCategory(db, category.ID, true))

	categories, err := ListCategories(db)
	require.NoError(t, err)
	assert.Empty(t, categories)

	products, err := ListProducts(db, 0)
	require.NoError(t, err)
	assert.Empty(t, products)

	items, err := ListCartItems(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteCategoryEmptyWithoutCascade(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "Groceries")

	require.NoError(t, DeleteCategory(db, category.ID, false))

	categories, err := ListCategories(db)
	require.NoError(t, err)
	assert.Empty(t, categories)
}
