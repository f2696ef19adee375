package repositories

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a throwaway in-memory SQLite database. Schemas are declared
// inline because the production migrations use Postgres-only defaults.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// One connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	statements := []string{
		`CREATE TABLE prompt_artifacts (
			id TEXT PRIMARY KEY,
			business_id TEXT NOT NULL,
			version INTEGER NOT NULL,
			english_text TEXT NOT NULL,
			spanish_text TEXT,
			tokens_en INTEGER NOT NULL DEFAULT 0,
			tokens_es INTEGER NOT NULL DEFAULT 0,
			mock BOOLEAN NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT 0,
			generated_at DATETIME NOT NULL,
			created_at DATETIME,
			UNIQUE (business_id, version)
		)`,
		`CREATE TABLE regeneration_jobs (
			id TEXT PRIMARY KEY,
			business_id TEXT NOT NULL,
			pending_key TEXT UNIQUE,
			reason TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			attempts INTEGER NOT NULL DEFAULT 0,
			error TEXT,
			started_at DATETIME,
			completed_at DATETIME,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE caller_profiles (
			id TEXT PRIMARY KEY,
			business_id TEXT NOT NULL,
			phone TEXT NOT NULL,
			name TEXT,
			email TEXT,
			preferences TEXT,
			call_count INTEGER NOT NULL DEFAULT 0,
			appointment_count INTEGER NOT NULL DEFAULT 0,
			last_call_outcome TEXT,
			last_appointment_at DATETIME,
			next_appointment_at DATETIME,
			negative_experience BOOLEAN NOT NULL DEFAULT 0,
			last_seen_at DATETIME,
			created_at DATETIME,
			updated_at DATETIME,
			UNIQUE (business_id, phone)
		)`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create test schema: %v", err)
		}
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}
