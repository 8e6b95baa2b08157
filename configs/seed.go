package configs

import (
	"foodapp-backend/entity"

	"github.com/google/uuid"
)

// SeedLookups fills the read-only lookup tables so the API is usable on a
// fresh database. Safe to run on every start.
func SeedLookups() error {
	db := DB()

	for _, name := range []string{"Karnataka", "Maharashtra", "Telangana", "Tamil Nadu"} {
		var count int64
		if err := db.Model(&entity.State{}).Where("state_name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&entity.State{UUID: uuid.NewString(), StateName: name}).Error; err != nil {
				return err
			}
		}
	}

	for _, name := range []string{"Cash on Delivery", "Card", "Net Banking", "Wallet"} {
		var count int64
		if err := db.Model(&entity.PaymentMethod{}).Where("payment_name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&entity.PaymentMethod{UUID: uuid.NewString(), PaymentName: name}).Error; err != nil {
				return err
			}
		}
	}

	for name, percent := range map[string]int{"FLAT10": 10, "FLAT20": 20} {
		var count int64
		if err := db.Model(&entity.Coupon{}).Where("coupon_name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			coupon := entity.Coupon{UUID: uuid.NewString(), CouponName: name, Percent: percent}
			if err := db.Create(&coupon).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// SeedCatalog creates a small demo catalog the first time only.
func SeedCatalog() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var state entity.State
	if err := db.First(&state).Error; err != nil {
		return err
	}

	category := entity.Category{
		UUID:         uuid.NewString(),
		CategoryName: "North Indian",
		Items: []entity.Item{
			{UUID: uuid.NewString(), ItemName: "Paneer Tikka", Price: 250, Type: entity.ItemTypeVeg},
			{UUID: uuid.NewString(), ItemName: "Chicken Biryani", Price: 320, Type: entity.ItemTypeNonVeg},
		},
	}
	if err := db.Create(&category).Error; err != nil {
		return err
	}

	restaurant := entity.Restaurant{
		UUID:           uuid.NewString(),
		RestaurantName: "Spice Route",
		PhotoURL:       "https://example.com/spice-route.png",
		AvgPrice:       280,
		Address: entity.Address{
			UUID:       uuid.NewString(),
			FlatBuilNo: "12, Food Street",
			Locality:   "Indiranagar",
			City:       "Bengaluru",
			Pincode:    "560038",
			StateID:    state.ID,
		},
	}
	if err := db.Create(&restaurant).Error; err != nil {
		return err
	}
	if err := db.Model(&restaurant).Association("Categories").Append(&category); err != nil {
		return err
	}
	return db.Model(&restaurant).Association("Items").Append(&category.Items)
}
