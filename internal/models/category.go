package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

const DefaultCategoryColor = "#6366f1"

var (
	ErrInvalidCategoryName  = errors.New("category name must be 1-50 characters")
	ErrInvalidCategoryColor = errors.New("category color must be a #rrggbb hex value")

	colorHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Category groups tools for the spend-by-category report
type Category struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	ColorHex    string    `gorm:"type:varchar(7);not null;default:'#6366f1'" json:"color_hex"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ColorHex == "" {
		c.ColorHex = DefaultCategoryColor
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return c.Validate()
}

func (c *Category) Validate() error {
	name := strings.TrimSpace(c.Name)
	if name == "" || len(name) > 50 {
		return ErrInvalidCategoryName
	}
	if !colorHexPattern.MatchString(c.ColorHex) {
		return ErrInvalidCategoryColor
	}
	return nil
}
