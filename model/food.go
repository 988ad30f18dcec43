package model

type FoodItem struct {
	DTO
	Name        string  `gorm:"not null;uniqueIndex" validate:"required" json:"name"`
	Price       float64 `gorm:"not null" validate:"required,gt=0" json:"price"`
	Category    string  `json:"category"` // snack, beverage, combo
	IsAvailable bool    `gorm:"default:true" json:"isAvailable"`
}

type FoodItems []FoodItem

type CreateFoodItemInput struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Category string  `json:"category" validate:"omitempty,oneof=snack beverage combo"`
}

type EditFoodItemInput struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Category    *string  `json:"category" validate:"omitempty,oneof=snack beverage combo"`
	IsAvailable *bool    `json:"isAvailable"`
}
