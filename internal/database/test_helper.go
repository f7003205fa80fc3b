package database

import (
	"fmt"
	"testing"

	"internal-tools-api/internal/config"
	"internal-tools-api/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database with the schema migrated.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// :memory: databases are per connection
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestCategory(t *testing.T, db *DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

// CreateTestTool inserts an active tool. Callers adjust the returned row and
// save it again for other statuses.
func CreateTestTool(t *testing.T, db *DB, category *models.Category, name, vendor string, department models.Department, monthlyCost string, users int) *models.Tool {
	t.Helper()

	tool := &models.Tool{
		Name:             name,
		Vendor:           vendor,
		CategoryID:       category.ID,
		MonthlyCost:      decimal.RequireFromString(monthlyCost),
		ActiveUsersCount: users,
		OwnerDepartment:  department,
		Status:           models.ToolStatusActive,
	}

	if err := db.Omit("Category").Create(tool).Error; err != nil {
		t.Fatalf("failed to create test tool: %v", err)
	}
	tool.Category = *category

	return tool
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"tools",
		"categories",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
