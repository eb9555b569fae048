// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"gardrop/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOptions tune factory behavior.
type SeedOptions struct {
	// SkipBcrypt stores plaintext passwords; only for fast local seeding.
	SkipBcrypt bool
	// MaxDays spreads created_at timestamps over this many days back.
	MaxDays int
	// DryRun builds entities without persisting them.
	DryRun bool
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

var advertSizes = []string{
	models.SizeXS, models.SizeS, models.SizeM,
	models.SizeL, models.SizeXL, models.SizeXXL,
}

var advertGenders = []string{models.GenderMale, models.GenderFemale}

var advertColors = []string{
	"black", "white", "navy", "red", "green", "beige", "grey", "brown", "pink", "yellow",
}

var clothingNouns = []string{
	"t-shirt", "shirt", "dress", "skirt", "jacket", "coat",
	"sweater", "cardigan", "jeans", "trousers", "hoodie", "blouse",
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Name:     gofakeit.FirstName(),
		Surname:  gofakeit.LastName(),
		Phone:    gofakeit.Phone(),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s>", user.Username, user.Email)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildAdvert constructs an advert struct without persisting it. Useful for batching.
func (f *Factory) BuildAdvert(user *models.User, category *models.Category, overrides ...func(*models.Advert)) *models.Advert {
	// #nosec G404: acceptable for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	noun := clothingNouns[r.Intn(len(clothingNouns))]
	color := advertColors[r.Intn(len(advertColors))]
	isFree := r.Float32() < 0.15

	title := fmt.Sprintf("%s %s", color, noun)
	title = strings.ToUpper(title[:1]) + title[1:]

	advert := &models.Advert{
		Title:        title,
		Description:  gofakeit.Paragraph(1, 2, 8, " "),
		Color:        color,
		Size:         advertSizes[r.Intn(len(advertSizes))],
		Gender:       advertGenders[r.Intn(len(advertGenders))],
		Phone:        user.Phone,
		IsChildCloth: r.Float32() < 0.2,
		IsFree:       isFree,
		IsUsed:       r.Float32() < 0.7,
		UserID:       user.ID,
		CategoryID:   category.ID,
	}
	if !isFree {
		advert.Price = float64(gofakeit.Number(5, 400))
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	advert.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	imageCount := r.Intn(3) + 1
	for i := 0; i < imageCount; i++ {
		advert.Images = append(advert.Images, models.AdvertImage{
			URL:      fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
			Position: i,
		})
	}

	if r.Float32() < 0.8 {
		advert.Location = &models.Location{
			City:   gofakeit.City(),
			Detail: gofakeit.Street(),
		}
	}

	for _, override := range overrides {
		override(advert)
	}
	return advert
}

// CreateAdvert constructs and persists a sample `models.Advert` for the given user.
func (f *Factory) CreateAdvert(user *models.User, category *models.Category, overrides ...func(*models.Advert)) (*models.Advert, error) {
	advert := f.BuildAdvert(user, category, overrides...)

	if f.opts.DryRun {
		f.nextID++
		advert.ID = f.nextID
		log.Printf("[dry-run] CreateAdvert: user=%d title=%q", advert.UserID, advert.Title)
		return advert, nil
	}

	if err := f.db.Create(advert).Error; err != nil {
		return nil, err
	}
	return advert, nil
}

// CreateQuestion constructs and persists a sample `models.Question` on the
// provided advert authored by the provided user.
func (f *Factory) CreateQuestion(user *models.User, advert *models.Advert, overrides ...func(*models.Question)) (*models.Question, error) {
	question := &models.Question{
		Content:  gofakeit.Question(),
		UserID:   user.ID,
		AdvertID: advert.ID,
	}

	for _, override := range overrides {
		override(question)
	}

	if err := f.db.Create(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

// CreateAnswer persists the advert owner's reply to a question.
func (f *Factory) CreateAnswer(question *models.Question, overrides ...func(*models.Answer)) (*models.Answer, error) {
	answer := &models.Answer{
		QuestionID: question.ID,
		Content:    gofakeit.Sentence(10),
	}

	for _, override := range overrides {
		override(answer)
	}

	if err := f.db.Create(answer).Error; err != nil {
		return nil, err
	}
	return answer, nil
}

// CreateSave persists a save from `user` on `advert` and bumps the counter
// the same way the save operation does at runtime.
func (f *Factory) CreateSave(user *models.User, advert *models.Advert) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		save := &models.AdvertSave{
			UserID:   user.ID,
			AdvertID: advert.ID,
		}
		if err := tx.Create(save).Error; err != nil {
			return err
		}
		return tx.Model(&models.Advert{}).
			Where("id = ?", advert.ID).
			UpdateColumn("saved_count", gorm.Expr("saved_count + 1")).Error
	})
}
