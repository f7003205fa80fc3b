package models

import (
	"errors"
	"strings"
	"time"

	"internal-tools-api/internal/money"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidToolName    = errors.New("tool name must be 2-100 characters")
	ErrInvalidVendor      = errors.New("vendor is required and must be at most 100 characters")
	ErrInvalidMonthlyCost = errors.New("monthly cost must be non-negative with at most 2 decimal places")
	ErrInvalidUsersCount  = errors.New("active users count cannot be negative")
	ErrInvalidDepartment  = errors.New("invalid owner department")
	ErrInvalidToolStatus  = errors.New("invalid tool status")
	ErrCategoryRequired   = errors.New("category is required")
)

// Tool is a SaaS subscription tracked by the catalog. MonthlyCost is the
// per-user price.
type Tool struct {
	ID               int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description      *string         `gorm:"type:text" json:"description"`
	Vendor           string          `gorm:"type:varchar(100);not null;index" json:"vendor"`
	WebsiteURL       *string         `gorm:"type:varchar(255)" json:"website_url"`
	CategoryID       int64           `gorm:"not null;index" json:"category_id"`
	MonthlyCost      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monthly_cost"`
	ActiveUsersCount int             `gorm:"not null;default:0" json:"active_users_count"`
	OwnerDepartment  Department      `gorm:"type:varchar(20);not null;index" json:"owner_department"`
	Status           ToolStatus      `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate hook for Tool
func (t *Tool) BeforeCreate(tx *gorm.DB) error {
	if t.Status == "" {
		t.Status = ToolStatusActive
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Tool
func (t *Tool) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the tool fields
func (t *Tool) Validate() error {
	name := strings.TrimSpace(t.Name)
	if len(name) < 2 || len(name) > 100 {
		return ErrInvalidToolName
	}

	vendor := strings.TrimSpace(t.Vendor)
	if vendor == "" || len(vendor) > 100 {
		return ErrInvalidVendor
	}

	if t.CategoryID <= 0 {
		return ErrCategoryRequired
	}

	if t.MonthlyCost.IsNegative() || !money.HasMaxScale(t.MonthlyCost, money.ScaleMoney) {
		return ErrInvalidMonthlyCost
	}

	if t.ActiveUsersCount < 0 {
		return ErrInvalidUsersCount
	}

	if !t.OwnerDepartment.IsValid() {
		return ErrInvalidDepartment
	}

	if !t.Status.IsValid() {
		return ErrInvalidToolStatus
	}

	return nil
}

// TotalCost is monthly_cost × active_users_count.
func (t *Tool) TotalCost() decimal.Decimal {
	return money.TotalCost(t.MonthlyCost, t.ActiveUsersCount)
}

// CategoryName returns the resolved category name, or "" when the
// association was not loaded.
func (t *Tool) CategoryName() string {
	return t.Category.Name
}

func (t *Tool) IsActive() bool {
	return t.Status == ToolStatusActive
}
