package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"index" json:"user_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	Servings        int       `json:"servings"`
	Ingredients     string    `json:"ingredients" gorm:"type:text"`
	Instructions    string    `json:"instructions" gorm:"type:text"`
	IsGenerated     bool      `json:"is_generated"`

	User     *User            `gorm:"foreignKey:UserID"`
	Comments []*RecipeComment `gorm:"foreignKey:RecipeID"`
	Timestamp
}

type RecipeComment struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID uuid.UUID `gorm:"index" json:"recipe_id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	Content  string    `gorm:"type:text" json:"content"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	User   *User   `gorm:"foreignKey:UserID"`
	Timestamp
}
