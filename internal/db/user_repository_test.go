package db

import (
	"path/filepath"
	"testing"

	"github.com/wicaksana/hadir/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "hadir-db-test.db"))
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

func seedUser(t *testing.T, database *gorm.DB, email string, handle string, nik string) models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "x",
		Handle:       handle,
		NIK:          nik,
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func TestFindByNormalizedEmail_MatchesStoredRowsWithNoise(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)
	seedUser(t, database, " J.Doe@Example.com ", "", "")

	user, err := repo.FindByNormalizedEmail("j.doe@example.com")
	if err != nil {
		t.Fatalf("expected a match, got %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected a persisted user")
	}
}

func TestFindByHandleOrNIK_SingleMatch(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)
	seeded := seedUser(t, database, "a@example.com", "jdoe42", "")

	user, found, err := repo.FindByHandleOrNIK("jdoe42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || user.ID != seeded.ID {
		t.Fatalf("expected user %d, got found=%v id=%d", seeded.ID, found, user.ID)
	}
}

func TestFindByHandleOrNIK_NoMatchReportsNotFound(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)

	_, found, err := repo.FindByHandleOrNIK("ghost99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected not found")
	}
}

func TestFindByHandleOrNIK_CrossFieldCollisionIsAmbiguous(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)

	// A token matching one user's nik and a different user's handle
	// column must resolve to neither.
	seedUser(t, database, "a@example.com", "", "3175012345678901")
	seedUser(t, database, "b@example.com", "3175012345678901", "")

	_, found, err := repo.FindByHandleOrNIK("3175012345678901")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected ambiguous token to resolve to no user")
	}
}

func TestIdentifierTaken_ExcludesTheOwner(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)
	owner := seedUser(t, database, "a@example.com", "jdoe42", "")

	taken, err := repo.IdentifierTaken("handle", "jdoe42", owner.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taken {
		t.Fatal("expected the owner's own handle to not count as taken")
	}

	other := seedUser(t, database, "b@example.com", "", "")
	taken, err = repo.IdentifierTaken("handle", "jdoe42", other.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !taken {
		t.Fatal("expected the handle to be taken for another user")
	}
}

func TestUniqueIndexesIgnoreEmptyIdentifiers(t *testing.T) {
	database := openTestDatabase(t)

	// Many users without handle or NIK coexist; duplicates of a real
	// handle are refused by the partial unique index.
	seedUser(t, database, "a@example.com", "", "")
	seedUser(t, database, "b@example.com", "", "")
	seedUser(t, database, "c@example.com", "jdoe42", "")

	duplicate := models.User{Email: "d@example.com", PasswordHash: "x", Handle: "jdoe42"}
	if err := database.Create(&duplicate).Error; err == nil {
		t.Fatal("expected duplicate handle insert to fail")
	}
}
