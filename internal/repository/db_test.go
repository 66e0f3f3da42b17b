package repository

import (
	"mathquiz_backend/internal/config"
	"mathquiz_backend/pkg/database"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a migrated SQLite database in a temp dir.
func newTestDB(t *testing.T, enforceAttemptUniqueness bool) *gorm.DB {
	t.Helper()
	dialector, err := database.Dialector(&config.DatabaseConfig{
		Driver: "sqlite",
		DBName: filepath.Join(t.TempDir(), "quiz.db"),
	})
	if err != nil {
		t.Fatalf("Dialector() error = %v", err)
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	if err := database.Migrate(db, enforceAttemptUniqueness); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return db
}
