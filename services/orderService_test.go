package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okothpaul/shopkart-api/models"
)

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")

	_, err := Checkout(db, user.ID, "12 Nehru Road", "cod")
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCheckoutCreatesOrdersAndClearsCart(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	category := createTestCategory(t, db, "Groceries")
	p1 := createTestProduct(t, db, category.ID, "Indian Spices Kit", 10)
	p2 := createTestProduct(t, db, category.ID, "Tea Gift Set", 5)

	item, err := AddCartItem(db, user.ID, p1.ID)
	require.NoError(t, err)
	_, err = UpdateCartQuantity(db, item.ID, user.ID, 2)
	require.NoError(t, err)
	_, err = AddCartItem(db, user.ID, p2.ID)
	require.NoError(t, err)

	orders, err := Checkout(db, user.ID, "12 Nehru Road", "upi")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	byProduct := map[uint]models.Order{}
	for _, order := range orders {
		byProduct[order.ProductID] = order
		assert.Equal(t, models.OrderStatusConfirmed, order.Status)
		assert.Equal(t, "12 Nehru Road", order.ShippingAddress)
		assert.Equal(t, "upi", order.PaymentMethod)
		assert.NotEmpty(t, order.Reference)
	}
	assert.True(t, byProduct[p1.ID].TotalPrice.Equal(decimal.NewFromInt(20)))
	assert.True(t, byProduct[p2.ID].TotalPrice.Equal(decimal.NewFromInt(5)))

	items, err := ListCartItems(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCheckoutSnapshotsPrice(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	category := createTestCategory(t, db, "Sports")
	product := createTestProduct(t, db, category.ID, "Yoga Mat", 800)

	_, err := AddCartItem(db, user.ID, product.ID)
	require.NoError(t, err)

	orders, err := Checkout(db, user.ID, "", "")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	// A later price change must not touch the recorded total.
	require.NoError(t, db.Model(product).Update("price", decimal.NewFromInt(9999)).Error)

	var stored models.Order
	require.NoError(t, db.First(&stored, orders[0].ID).Error)
	assert.True(t, stored.TotalPrice.Equal(decimal.NewFromInt(800)), "got %s", stored.TotalPrice)
}

func TestCheckoutRecordsEmptyAddressAndMethod(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	category := createTestCategory(t, db, "Sports")
	product := createTestProduct(t, db, category.ID, "Yoga Mat", 800)

	_, err := AddCartItem(db, user.ID, product.ID)
	require.NoError(t, err)

	orders, err := Checkout(db, user.ID, "", "")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Empty(t, orders[0].ShippingAddress)
	assert.Empty(t, orders[0].PaymentMethod)
}

func TestListOrdersScopedToUser(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	category := createTestCategory(t, db, "Sports")
	product := createTestProduct(t, db, category.ID, "Yoga Mat", 800)

	_, err := AddCartItem(db, alice.ID, product.ID)
	require.NoError(t, err)
	_, err = Checkout(db, alice.ID, "addr", "cod")
	require.NoError(t, err)

	aliceOrders, err := ListOrders(db, alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceOrders, 1)

	bobOrders, err := ListOrders(db, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobOrders)
}

func TestGetOrderForeignUser(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	category := createTestCategory(t, db, "Sports")
	product := createTestProduct(t, db, category.ID, "Yoga Mat", 800)

	_, err := AddCartItem(db, alice.ID, product.ID)
	require.NoError(t, err)
	orders, err := Checkout(db, alice.ID, "addr", "cod")
	require.NoError(t, err)

	_, err = GetOrder(db, orders[0].ID, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	order, err := GetOrder(db, orders[0].ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, orders[0].ID, order.ID)
}
