package sqlite

import (
	"path/filepath"
	"testing"
)

func TestDriverInfo(t *testing.T) {
	info := GetInfo()

	if info.DriverName == "" || info.DriverType == "" || info.Package == "" {
		t.Errorf("incomplete driver info: %+v", info)
	}
	if info.DriverName != DriverName() || info.DriverType != DriverType() || info.IsCGO != IsCGO() {
		t.Errorf("GetInfo() = %+v disagrees with accessors", info)
	}
	t.Logf("SQLite driver: %s (%s) from %s", info.DriverName, info.DriverType, info.Package)
}

func TestOpenAndReadOnly(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bible.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE verse (book TEXT, chapter INTEGER, verse INTEGER, content TEXT)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO verse VALUES (?, ?, ?, ?)`, "John", 3, 16, "For God so loved the world"); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}
	db.Close()

	rodb, err := OpenReadOnly(dbPath)
	if err != nil {
		t.Fatalf("failed to open read-only: %v", err)
	}
	defer rodb.Close()

	var content string
	if err := rodb.QueryRow(`SELECT content FROM verse WHERE book = ? AND verse = ?`, "John", 16).Scan(&content); err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if content != "For God so loved the world" {
		t.Errorf("content = %q", content)
	}

	if _, err := rodb.Exec(`INSERT INTO verse VALUES ('John', 3, 17, 'x')`); err == nil {
		t.Error("write through read-only handle should fail")
	}
}

func TestMustOpen(t *testing.T) {
	db := MustOpen(filepath.Join(t.TempDir(), "test.db"))
	db.Close()
}

func TestDriverTypeConsistency(t *testing.T) {
	switch DriverType() {
	case "purego":
		if IsCGO() || DriverName() != "sqlite" {
			t.Errorf("purego driver: IsCGO=%v name=%s", IsCGO(), DriverName())
		}
	case "cgo":
		if !IsCGO() || DriverName() != "sqlite3" {
			t.Errorf("cgo driver: IsCGO=%v name=%s", IsCGO(), DriverName())
		}
	default:
		t.Errorf("unknown driver type: %s", DriverType())
	}
}
