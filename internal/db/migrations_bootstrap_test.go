package db

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/glebarez/sqlite"
	embeddedmigrations "github.com/terraincognita07/cycleadvisor/migrations"
	"gorm.io/gorm"
)

func TestOpenSQLiteAppliesEmbeddedMigrationsOnCleanDatabase(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "cycleadvisor-clean.db")
	database := openSQLiteForMigrationBootstrapTest(t, databasePath)

	assertTableColumns(t, database, "users", "id", "display_name", "created_at")
	assertTableColumns(t, database, "cycle_records", "user_id", "start_date", "end_date", "length", "symptoms", "phi_score")
	assertTableColumns(t, database, "phi_scores", "user_id", "date", "overall", "physical", "mental", "sleep", "nutrition")
	assertSQLiteObjectExists(t, database, "index", "uidx_phi_user_date")
	assertSQLiteObjectExists(t, database, "index", "idx_cycle_records_user_start")
	assertAllEmbeddedMigrationsApplied(t, database)
}

func TestOpenSQLiteSkipsAlreadyAddedColumns(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "cycleadvisor-partial.db")
	seedSchemaWithoutMigrationLedger(t, databasePath)

	database := openSQLiteForMigrationBootstrapTest(t, databasePath)

	assertTableColumns(t, database, "users", "display_name")
	assertAllEmbeddedMigrationsApplied(t, database)

	var displayName string
	if err := database.Raw(`SELECT display_name FROM users WHERE id = 1`).Scan(&displayName).Error; err != nil {
		t.Fatalf("load seeded user: %v", err)
	}
	if displayName != "seeded" {
		t.Fatalf("expected seeded display name to survive, got %q", displayName)
	}
}

func TestOpenSQLiteMigrationBootstrapIsIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "cycleadvisor-idempotent.db")

	firstOpen, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("first open sqlite: %v", err)
	}
	firstRecords := loadMigrationRecords(t, firstOpen)

	firstSQLDB, err := firstOpen.DB()
	if err != nil {
		t.Fatalf("first open sql db: %v", err)
	}
	if err := firstSQLDB.Close(); err != nil {
		t.Fatalf("close first sql db: %v", err)
	}

	secondOpen := openSQLiteForMigrationBootstrapTest(t, databasePath)
	secondRecords := loadMigrationRecords(t, secondOpen)

	if !reflect.DeepEqual(firstRecords, secondRecords) {
		t.Fatalf("expected migration records to remain unchanged between boots, before=%v after=%v", firstRecords, secondRecords)
	}
}

func TestLoadEmbeddedMigrationsRejectsDuplicateVersions(t *testing.T) {
	files := fstest.MapFS{
		"001_a.sql": {Data: []byte("SELECT 1;")},
		"001_b.sql": {Data: []byte("SELECT 2;")},
	}
	if _, err := loadEmbeddedMigrations(files); err == nil {
		t.Fatal("expected duplicate migration versions to be rejected")
	}
}

func TestLoadEmbeddedMigrationsOrdersNumerically(t *testing.T) {
	files := fstest.MapFS{
		"10_late.sql": {Data: []byte("SELECT 10;")},
		"2_early.sql": {Data: []byte("SELECT 2;")},
		"README.md":   {Data: []byte("ignored")},
		"003_mid.sql": {Data: []byte("SELECT 3;")},
	}
	migrations, err := loadEmbeddedMigrations(files)
	if err != nil {
		t.Fatalf("load migrations: %v", err)
	}

	names := make([]string, 0, len(migrations))
	for _, migration := range migrations {
		names = append(names, migration.Name)
	}
	expected := []string{"2_early.sql", "003_mid.sql", "10_late.sql"}
	if !reflect.DeepEqual(names, expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
}

func TestSplitSQLStatementsDropsBlanks(t *testing.T) {
	statements := splitSQLStatements("CREATE TABLE a(x);\n\n ;CREATE TABLE b(y);  ")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(statements), statements)
	}
}

func openSQLiteForMigrationBootstrapTest(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

// seedSchemaWithoutMigrationLedger builds a database that already carries
// users.display_name but has no schema_migrations table.
func seedSchemaWithoutMigrationLedger(t *testing.T, databasePath string) {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{})
	if err != nil {
		t.Fatalf("open seed sqlite: %v", err)
	}

	initSQL, err := fs.ReadFile(embeddedmigrations.Files, "001_init.sql")
	if err != nil {
		t.Fatalf("read 001 migration: %v", err)
	}
	for _, statement := range splitSQLStatements(string(initSQL)) {
		if err := database.Exec(statement).Error; err != nil {
			t.Fatalf("apply 001 statement: %v", err)
		}
	}
	if err := database.Exec(`ALTER TABLE users ADD COLUMN display_name TEXT NOT NULL DEFAULT ''`).Error; err != nil {
		t.Fatalf("add display_name: %v", err)
	}
	if err := database.Exec(`INSERT INTO users (id, display_name) VALUES (1, 'seeded')`).Error; err != nil {
		t.Fatalf("insert seeded user: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open seed sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close seed sql db: %v", err)
	}
}

func assertTableColumns(t *testing.T, database *gorm.DB, tableName string, expected ...string) {
	t.Helper()

	columns := loadTableColumns(t, database, tableName)
	for _, column := range expected {
		if _, exists := columns[column]; !exists {
			t.Fatalf("expected %s.%s column to exist after migrations", tableName, column)
		}
	}
}

func assertSQLiteObjectExists(t *testing.T, database *gorm.DB, objectType string, objectName string) {
	t.Helper()

	var row struct {
		SQL string `gorm:"column:sql"`
	}
	if err := database.Raw(
		`SELECT sql FROM sqlite_master WHERE type = ? AND name = ?`,
		objectType,
		objectName,
	).Scan(&row).Error; err != nil {
		t.Fatalf("load sqlite master sql for %s %s: %v", objectType, objectName, err)
	}
	if strings.TrimSpace(row.SQL) == "" {
		t.Fatalf("expected %s %s to exist", objectType, objectName)
	}
}

func assertAllEmbeddedMigrationsApplied(t *testing.T, database *gorm.DB) {
	t.Helper()

	migrations, err := loadEmbeddedMigrations(embeddedmigrations.Files)
	if err != nil {
		t.Fatalf("load embedded migrations: %v", err)
	}
	expectedVersions := make([]string, 0, len(migrations))
	for _, migration := range migrations {
		expectedVersions = append(expectedVersions, migration.Version)
	}

	actualVersions := make([]string, 0)
	if err := database.Raw(`SELECT version FROM schema_migrations ORDER BY version ASC`).Scan(&actualVersions).Error; err != nil {
		t.Fatalf("load applied migration versions: %v", err)
	}

	if !reflect.DeepEqual(expectedVersions, actualVersions) {
		t.Fatalf("unexpected applied migration versions: expected=%v actual=%v", expectedVersions, actualVersions)
	}
}

type migrationRecord struct {
	Version   string `gorm:"column:version"`
	Name      string `gorm:"column:name"`
	AppliedAt string `gorm:"column:applied_at"`
}

func loadMigrationRecords(t *testing.T, database *gorm.DB) []migrationRecord {
	t.Helper()

	records := make([]migrationRecord, 0)
	if err := database.Raw(
		`SELECT version, name, applied_at FROM schema_migrations ORDER BY version ASC`,
	).Scan(&records).Error; err != nil {
		t.Fatalf("load migration records: %v", err)
	}
	return records
}

func loadTableColumns(t *testing.T, database *gorm.DB, tableName string) map[string]struct{} {
	t.Helper()

	query := fmt.Sprintf(`PRAGMA table_info("%s")`, strings.ReplaceAll(tableName, `"`, `""`))

	var rows []struct {
		Name string `gorm:"column:name"`
	}
	if err := database.Raw(query).Scan(&rows).Error; err != nil {
		t.Fatalf("load table columns for %s: %v", tableName, err)
	}

	columns := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		columns[strings.ToLower(strings.TrimSpace(row.Name))] = struct{}{}
	}
	return columns
}
