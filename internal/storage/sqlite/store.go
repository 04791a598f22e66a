package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mindfulmauschen/healthtrack/internal/models"
)

// SchemaVersion is stamped into new databases and checked on Load and on
// import. Bump it whenever the schema below changes shape.
const SchemaVersion = 1

const schema = `
PRAGMA foreign_keys = ON;
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

CREATE TABLE IF NOT EXISTS foods (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	calories INTEGER NOT NULL,
	entry_date TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_foods_date ON foods(entry_date);

CREATE TABLE IF NOT EXISTS exercise (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	activity TEXT NOT NULL,
	calories INTEGER NOT NULL,
	entry_date TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_exercise_date ON exercise(entry_date);

CREATE TABLE IF NOT EXISTS weights (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	kind TEXT NOT NULL CHECK (kind IN ('current', 'target')),
	weight REAL NOT NULL,
	entry_date TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_weights_kind_date ON weights(kind, entry_date);

CREATE TABLE IF NOT EXISTS goals (
	key TEXT PRIMARY KEY,
	value REAL NOT NULL,
	updated_date TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS meal_plan (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	week TEXT NOT NULL,
	day TEXT NOT NULL,
	slot TEXT NOT NULL,
	content TEXT NOT NULL DEFAULT '',
	UNIQUE(week, day, slot)
);

CREATE TABLE IF NOT EXISTS pantry (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	item TEXT NOT NULL,
	weight INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS shopping_list (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	item TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sleep_entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	night TEXT NOT NULL,
	bedtime TEXT NOT NULL,
	wakeup TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sleep_night ON sleep_entries(night);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);
`

// RequiredTables is the set a database must carry to be accepted on Load
// and on import.
var RequiredTables = []string{
	"foods", "exercise", "weights", "goals", "meal_plan",
	"pantry", "shopping_list", "sleep_entries", "settings", "schema_version",
}

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// Single connection so concurrent writers queue instead of hitting
	// SQLITE_BUSY, and session pragmas stay applied.
	db.SetMaxOpenConns(1)
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	if err := s.stampSchemaVersion(); err != nil {
		return err
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		defaults := models.Settings{
			FoodAIEnabled:        false,
			ExerciseAIEnabled:    false,
			MealPlanAIEnabled:    false,
			NotificationsEnabled: true,
			SilentNotifications:  false,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'healthtrack init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	s.db = db

	if _, err := s.db.Exec("PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL; PRAGMA synchronous = NORMAL;"); err != nil {
		return fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := s.validate(); err != nil {
		s.db.Close()
		s.db = nil
		return err
	}

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// validate checks that every required table exists and the schema version
// matches what this binary expects.
func (s *Store) validate() error {
	for _, table := range RequiredTables {
		ok, err := s.tableExists(table)
		if err != nil {
			return fmt.Errorf("failed to inspect database: %w", err)
		}
		if !ok {
			return fmt.Errorf("database at %s is missing table %q", s.path, table)
		}
	}

	var version int
	if err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version != SchemaVersion {
		return fmt.Errorf("database schema version %d does not match expected version %d", version, SchemaVersion)
	}
	return nil
}

func (s *Store) stampSchemaVersion() error {
	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM schema_version").Scan(&count); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if count == 0 {
		if _, err := s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", SchemaVersion); err != nil {
			return fmt.Errorf("failed to stamp schema version: %w", err)
		}
	}
	return nil
}

// tableExists checks if a table exists in the SQLite database.
// The check is case-insensitive to match SQLite's behavior.
func (s *Store) tableExists(tableName string) (bool, error) {
	var count int
	row := s.db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name COLLATE NOCASE = ?", tableName)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection.
// Returns nil if the database has not been initialized or loaded.
// Callers should use Load() before calling this method.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
