package migration

import (
	"fmt"
	"log"

	"github.com/rackiel/Foodify-sub001/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []any{
		&entities.User{},
		&entities.Ingredient{},
		&entities.FoodDonation{},
		&entities.DonationReservation{},
		&entities.Challenge{},
		&entities.ChallengeParticipant{},
		&entities.PointsTransaction{},
		&entities.Recipe{},
		&entities.RecipeComment{},
		&entities.UserPreferences{},
		&entities.CommunityFeedback{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
