package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/anskp/Flexi-Fit-sub001/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	// TranslateError surfaces duplicate-key and foreign-key violations as
	// gorm sentinel errors so services can map them to the error taxonomy.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if os.Getenv("DB_AUTO_MIGRATE") == "true" {
		if err := AutoMigrate(db); err != nil {
			log.Fatalf("Error running migrations: %v", err)
		}
	}

	return db
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.MemberProfile{},
		&db_models.TrainerProfile{},
		&db_models.TrainerPlan{},
		&db_models.Gym{},
		&db_models.GymPlan{},
		&db_models.MultiGymMemberProfile{},
		&db_models.TrainerSubscription{},
		&db_models.GymSubscription{},
		&db_models.StepRecord{},
		&db_models.WorkoutSession{},
		&db_models.MealLog{},
		&db_models.TrainingAssignment{},
		&db_models.GymCheckIn{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
