package testutil

import (
	"testing"

	"github.com/ParthPatil-04/API-demo/internal/db"
	"github.com/ParthPatil-04/API-demo/internal/model"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestDB returns a migrated in-memory SQLite database private to t.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database := openMemoryDB(t, "testdb_")

	if err := db.Migrate(database); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return database
}

// NewUnmigratedDB returns an in-memory SQLite database without the books
// table, so every query against it fails.
func NewUnmigratedDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openMemoryDB(t, "errdb_")
}

func openMemoryDB(t *testing.T, prefix string) *gorm.DB {
	t.Helper()

	dsn := "file:" + prefix + uuid.New().String() + "?mode=memory&cache=shared"

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func SeedBook(t *testing.T, database *gorm.DB, title, author string, year *int) model.Book {
	t.Helper()

	book := model.Book{
		Title:            title,
		Author:           author,
		FirstPublishYear: year,
	}

	if err := database.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}

	return book
}

func IntPtr(v int) *int {
	return &v
}

func StrPtr(s string) *string {
	return &s
}
