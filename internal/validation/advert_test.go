package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() AdvertInput {
	return AdvertInput{
		Title:  "Blue denim jacket",
		Price:  150,
		Size:   "m",
		Gender: "female",
		Color:  "blue",
		Phone:  "+905551234567",
	}
}

func TestValidateAdvert(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AdvertInput)
		wantErr string
	}{
		{"valid", func(in *AdvertInput) {}, ""},
		{"empty title", func(in *AdvertInput) { in.Title = "  " }, "title is required"},
		{"title too long", func(in *AdvertInput) { in.Title = strings.Repeat("a", 121) }, "title too long"},
		{"description too long", func(in *AdvertInput) { in.Description = strings.Repeat("a", 501) }, "description too long"},
		{"multibyte description counted in characters", func(in *AdvertInput) { in.Description = strings.Repeat("ğ", 500) }, ""},
		{"multibyte description over the limit", func(in *AdvertInput) { in.Description = strings.Repeat("ğ", 501) }, "description too long"},
		{"bad size", func(in *AdvertInput) { in.Size = "xxxl" }, "size must be one of"},
		{"uppercase size rejected", func(in *AdvertInput) { in.Size = "M" }, "size must be one of"},
		{"bad gender", func(in *AdvertInput) { in.Gender = "other" }, "gender must be either"},
		{"missing color", func(in *AdvertInput) { in.Color = "" }, "color is required"},
		{"missing phone", func(in *AdvertInput) { in.Phone = "" }, "phone is required"},
		{"zero price not free", func(in *AdvertInput) { in.Price = 0 }, "price must be positive"},
		{"negative price not free", func(in *AdvertInput) { in.Price = -5 }, "price must be positive"},
		{"free advert allows zero price", func(in *AdvertInput) { in.IsFree = true; in.Price = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := ValidateAdvert(in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	assert.NoError(t, ValidateContent("Is this still available?"))
	assert.ErrorContains(t, ValidateContent(""), "content is required")
	assert.ErrorContains(t, ValidateContent("   \n\t"), "content is required")
	assert.ErrorContains(t, ValidateContent(strings.Repeat("x", 501)), "content too long")
	assert.NoError(t, ValidateContent(strings.Repeat("x", 500)))
	assert.NoError(t, ValidateContent(strings.Repeat("ş", 500)))
	assert.ErrorContains(t, ValidateContent(strings.Repeat("ş", 501)), "content too long")
}

func TestValidateSize(t *testing.T) {
	for _, size := range []string{"xs", "s", "m", "l", "xl", "xxl"} {
		assert.NoError(t, ValidateSize(size), size)
	}
	assert.Error(t, ValidateSize(""))
	assert.Error(t, ValidateSize("medium"))
}

func TestValidateGender(t *testing.T) {
	assert.NoError(t, ValidateGender("male"))
	assert.NoError(t, ValidateGender("female"))
	assert.Error(t, ValidateGender(""))
	assert.Error(t, ValidateGender("unisex"))
}
