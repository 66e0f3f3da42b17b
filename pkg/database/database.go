package database

import (
	"fmt"
	"log"
	"mathquiz_backend/internal/config"
	"mathquiz_backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const attemptUniqueIndex = "idx_attempt_once"

// Dialector builds the gorm dialector for the configured driver.
func Dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.DBName,
			cfg.SSLMode,
		)
		return postgres.Open(dsn), nil
	case "sqlite":
		// dbname is the database file path
		return sqlite.Open(cfg.DBName), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func InitDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	level := logger.Warn
	if debug {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

// Migrate creates or updates every table. The attempt uniqueness index is
// only created when enforceAttemptUniqueness is set.
func Migrate(db *gorm.DB, enforceAttemptUniqueness bool) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.QuizAttempt{},
		&model.QuizProgress{},
		&model.Bookmark{},
		&model.DiscussionPost{},
		&model.Badge{},
		&model.Doubt{},
		&model.DoubtResponse{},
	)
	if err != nil {
		return err
	}

	if enforceAttemptUniqueness && !db.Migrator().HasIndex(&model.QuizAttempt{}, attemptUniqueIndex) {
		err := db.Exec(fmt.Sprintf(
			"CREATE UNIQUE INDEX %s ON quiz_attempts (student_id, question_id, quiz_session_id)",
			attemptUniqueIndex,
		)).Error
		if err != nil {
			return fmt.Errorf("create %s: %w", attemptUniqueIndex, err)
		}
	}

	log.Println("Database migration completed")
	return nil
}
