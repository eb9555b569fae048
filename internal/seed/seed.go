package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gardrop/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumAdverts  int
	ShouldClean bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d adverts...", opts.NumUsers, opts.NumAdverts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	if err := Categories(db); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	factory := NewFactory(db, SeedOptions{})
	// #nosec G404: acceptable for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)
	}
	log.Printf("%d test users created", len(users))

	if len(users) == 0 {
		return fmt.Errorf("no users created, cannot seed adverts")
	}

	adverts := make([]*models.Advert, 0, opts.NumAdverts)
	for i := 0; i < opts.NumAdverts; i++ {
		user := users[r.Intn(len(users))]
		category := categories[r.Intn(len(categories))]
		advert, err := factory.CreateAdvert(user, &category)
		if err != nil {
			return fmt.Errorf("failed to create advert: %w", err)
		}
		adverts = append(adverts, advert)
	}
	log.Printf("%d adverts created", len(adverts))

	// Scatter some saves and question threads across the listings.
	for _, advert := range adverts {
		for _, user := range users {
			if user.ID == advert.UserID {
				continue
			}
			if r.Float32() < 0.1 {
				if err := factory.CreateSave(user, advert); err != nil {
					log.Printf("Failed to create save: %v", err)
				}
			}
			if r.Float32() < 0.05 {
				question, err := factory.CreateQuestion(user, advert)
				if err != nil {
					log.Printf("Failed to create question: %v", err)
					continue
				}
				if r.Float32() < 0.6 {
					if _, err := factory.CreateAnswer(question); err != nil {
						log.Printf("Failed to create answer: %v", err)
					}
				}
			}
		}
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE answers, questions, advert_saves, locations, advert_images, adverts, categories, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
