package initializers

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/okothpaul/shopkart-api/models"
)

// SeedDatabase loads a small demo catalog and a demo account on first run.
// It is a no-op once any product exists.
func SeedDatabase() {
	var count int64
	if err := DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Println("Seed check failed:", err)
		return
	}
	if count > 0 {
		return
	}

	categoryNames := []string{
		"Electronics", "Fashion", "Home & Kitchen",
		"Groceries", "Sports", "Home Decor",
	}

	categories := make(map[string]uint)
	for _, name := range categoryNames {
		category := models.Category{Name: name}
		if err := DB.Create(&category).Error; err != nil {
			log.Println("Failed to seed category:", err)
			return
		}
		categories[name] = category.ID
	}

	products := []models.Product{
		{Name: "Samsung Galaxy M34", Price: decimal.NewFromFloat(18999.00), Description: "5G Smartphone with 6000mAh battery", CategoryID: categories["Electronics"], Stock: 25, Attributes: datatypes.JSON([]byte(`{"brand":"Samsung","warrantyMonths":12}`))},
		{Name: "Mi Smart Band 6", Price: decimal.NewFromFloat(2499.00), Description: "AMOLED Display Fitness Band", CategoryID: categories["Electronics"], Stock: 30},
		{Name: "Boat Airdopes 141", Price: decimal.NewFromFloat(1299.00), Description: "Wireless Earbuds with 42H Playback", CategoryID: categories["Electronics"], Stock: 40},
		{Name: "Cotton Kurti", Price: decimal.NewFromFloat(899.00), Description: "Handblock Printed Cotton Kurti", CategoryID: categories["Fashion"], Stock: 15},
		{Name: "Men's Formal Shirt", Price: decimal.NewFromFloat(1599.00), Description: "Slim Fit Cotton Formal Shirt", CategoryID: categories["Fashion"], Stock: 20},
		{Name: "Kitchen Set", Price: decimal.NewFromFloat(2999.00), Description: "7 Pcs Non-Stick Cookware Set", CategoryID: categories["Home & Kitchen"], Stock: 10},
		{Name: "Silk Saree", Price: decimal.NewFromFloat(4599.00), Description: "Banarasi Silk Saree with Blouse", CategoryID: categories["Fashion"], Stock: 8},
		{Name: "Pressure Cooker", Price: decimal.NewFromFloat(1899.00), Description: "Stainless Steel Pressure Cooker 5L", CategoryID: categories["Home & Kitchen"], Stock: 12},
		{Name: "Indian Spices Kit", Price: decimal.NewFromFloat(699.00), Description: "Assorted Indian Masalas Pack", CategoryID: categories["Groceries"], Stock: 50},
		{Name: "Yoga Mat", Price: decimal.NewFromFloat(799.00), Description: "Anti-Skip Exercise Yoga Mat", CategoryID: categories["Sports"], Stock: 25},
		{Name: "Tea Gift Set", Price: decimal.NewFromFloat(599.00), Description: "Assam & Darjeeling Tea Pack", CategoryID: categories["Groceries"], Stock: 35},
		{Name: "Brass Diya Set", Price: decimal.NewFromFloat(499.00), Description: "Handcrafted Brass Diya for Pooja", CategoryID: categories["Home Decor"], Stock: 20},
	}

	for _, product := range products {
		if err := DB.Create(&product).Error; err != nil {
			log.Println("Failed to seed product:", err)
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash demo password:", err)
		return
	}
	demoUser := models.User{Username: "demo", Email: "demo@example.com", Password: string(hashed)}
	if err := DB.Create(&demoUser).Error; err != nil {
		log.Println("Failed to seed demo user:", err)
		return
	}

	log.Println("Database seeded successfully.")
}
