package backoffice

import (
	"context"

	"github.com/grocerly/appcore/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed fills an empty catalog with a small grocery inventory for local
// development. A non-empty products table is left alone.
func Seed(ctx context.Context, db *gorm.DB, logg *logger.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []Product{
		{CategoryID: 1, Name: "Bananas", Description: "Fresh bananas", Price: decimal.NewFromFloat(2.40), Stock: 120, Image: "bananas.jpg", Weight: "1", Unit: "dozen"},
		{CategoryID: 1, Name: "Apples", Description: "Red apples", Price: decimal.NewFromFloat(3.10), Stock: 90, Image: "apples.jpg", Weight: "1", Unit: "kg"},
		{CategoryID: 1, Name: "Tomatoes", Description: "Vine tomatoes", Price: decimal.NewFromFloat(2.75), Stock: 60, Image: "tomatoes.jpg", Weight: "1", Unit: "kg"},
		{CategoryID: 2, Name: "Whole Milk", Description: "Full cream milk", Price: decimal.NewFromFloat(1.20), Stock: 200, Image: "milk.jpg", Weight: "1", Unit: "L"},
		{CategoryID: 2, Name: "Cheddar Cheese", Description: "Aged cheddar block", Price: decimal.NewFromFloat(4.50), Stock: 45, Image: "cheddar.jpg", Weight: "250", Unit: "g"},
		{CategoryID: 2, Name: "Greek Yogurt", Description: "Plain greek yogurt", Price: decimal.NewFromFloat(3.25), Stock: 75, Image: "yogurt.jpg", Weight: "500", Unit: "g"},
		{CategoryID: 3, Name: "Sourdough Bread", Description: "Stone-baked sourdough loaf", Price: decimal.NewFromFloat(3.80), Stock: 30, Image: "sourdough.jpg", Weight: "800", Unit: "g"},
		{CategoryID: 3, Name: "Croissants", Description: "Butter croissants", Price: decimal.NewFromFloat(4.20), Stock: 25, Image: "croissants.jpg", Weight: "4", Unit: "pack"},
		{CategoryID: 4, Name: "Basmati Rice", Description: "Long grain basmati", Price: decimal.NewFromFloat(11.90), Stock: 40, Image: "rice.jpg", Weight: "5", Unit: "kg"},
		{CategoryID: 4, Name: "Olive Oil", Description: "Extra virgin olive oil", Price: decimal.NewFromFloat(8.60), Stock: 35, Image: "olive-oil.jpg", Weight: "750", Unit: "ml"},
		{CategoryID: 4, Name: "Black Tea", Description: "Loose leaf black tea", Price: decimal.NewFromFloat(5.40), Stock: 55, Image: "tea.jpg", Weight: "200", Unit: "g"},
		{CategoryID: 5, Name: "Dish Soap", Description: "Lemon dish soap", Price: decimal.NewFromFloat(2.10), Stock: 80, Image: "dish-soap.jpg", Weight: "500", Unit: "ml"},
	}

	if err := db.WithContext(ctx).Create(&products).Error; err != nil {
		return err
	}
	if logg != nil {
		logg.Info(ctx, "seeded catalog with sample products")
	}
	return nil
}
