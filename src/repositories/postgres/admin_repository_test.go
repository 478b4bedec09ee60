package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/greenmarket/admin-server/src/database"
	"github.com/greenmarket/admin-server/src/models"
	"github.com/greenmarket/admin-server/src/repositories"
)

func newStoredAdmin(username string) *models.Admin {
	return &models.Admin{
		ID:           uuid.New(),
		Username:     username,
		Fname:        "Test",
		Lname:        "Admin",
		Email:        username + "@example.com",
		PasswordHash: "$2a$04$notarealhashbutlongenoughtostore",
		IsActive:     true,
		Role:         models.RoleAdmin,
	}
}

func TestAdminRepository_CreateAndGet(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewAdminRepository(tdb.Pool)
		ctx := context.Background()

		admin := newStoredAdmin("alice")
		if err := repo.Create(ctx, admin); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if admin.CreatedAt.IsZero() || admin.UpdatedAt.IsZero() {
			t.Error("expected timestamps to be populated on insert")
		}

		byID, err := repo.GetByID(ctx, admin.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if byID.Username != "alice" || byID.Email != "alice@example.com" {
			t.Errorf("unexpected record: %+v", byID)
		}

		byUsername, err := repo.GetByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("GetByUsername failed: %v", err)
		}
		if byUsername.ID != admin.ID {
			t.Errorf("expected %s, got %s", admin.ID, byUsername.ID)
		}
	})
}

func TestAdminRepository_GetMissing(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewAdminRepository(tdb.Pool)
		ctx := context.Background()

		if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, repositories.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := repo.GetByUsername(ctx, "nobody"); !errors.Is(err, repositories.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAdminRepository_DuplicateUsername(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewAdminRepository(tdb.Pool)
		ctx := context.Background()

		first := newStoredAdmin("alice")
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		second := newStoredAdmin("alice")
		second.Email = "other@example.com"
		if err := repo.Create(ctx, second); !errors.Is(err, repositories.ErrConflict) {
			t.Errorf("expected ErrConflict for duplicate username, got %v", err)
		}
	})
}

func TestAdminRepository_DuplicateEmail(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewAdminRepository(tdb.Pool)
		ctx := context.Background()

		first := newStoredAdmin("alice")
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		second := newStoredAdmin("bob")
		second.Email = "alice@example.com"
		if err := repo.Create(ctx, second); !errors.Is(err, repositories.ErrConflict) {
			t.Errorf("expected ErrConflict for duplicate email, got %v", err)
		}
	})
}

func TestAdminRepository_ListNewestFirst(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewAdminRepository(tdb.Pool)
		ctx := context.Background()

		older := newStoredAdmin("older")
		if err := repo.Create(ctx, older); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		// Distinct created_at so the ordering is deterministic
		time.Sleep(10 * time.Millisecond)
		newer := newStoredAdmin("newer")
		if err := repo.Create(ctx, newer); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		admins, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(admins) != 2 {
			t.Fatalf("expected 2 admins, got %d", len(admins))
		}
		if admins[0].Username != "newer" || admins[1].Username != "older" {
			t.Errorf("expected newest-first ordering, got %s then %s",
				admins[0].Username, admins[1].Username)
		}
	})
}

func TestAdminRepository_PartialUpdate(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewAdminRepository(tdb.Pool)
		ctx := context.Background()

		admin := newStoredAdmin("alice")
		if err := repo.Create(ctx, admin); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		fname := "Renamed"
		inactive := false
		updated, err := repo.Update(ctx, admin.ID, models.AdminUpdate{
			Fname:    &fname,
			IsActive: &inactive,
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Fname != "Renamed" {
			t.Errorf("expected updated fname, got %q", updated.Fname)
		}
		if updated.IsActive {
			t.Error("expected is_active false after update")
		}
		if updated.Username != "alice" || updated.Lname != "Admin" {
			t.Errorf("untouched fields must survive, got %+v", updated)
		}
		if !updated.UpdatedAt.After(admin.UpdatedAt) {
			t.Error("expected updated_at to advance")
		}
	})
}

func TestAdminRepository_UpdateMissing(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewAdminRepository(tdb.Pool)

		fname := "Renamed"
		_, err := repo.Update(context.Background(), uuid.New(), models.AdminUpdate{Fname: &fname})
		if !errors.Is(err, repositories.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAdminRepository_DeleteReturnsRecord(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewAdminRepository(tdb.Pool)
		ctx := context.Background()

		admin := newStoredAdmin("alice")
		if err := repo.Create(ctx, admin); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		deleted, err := repo.Delete(ctx, admin.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if deleted.Username != "alice" {
			t.Errorf("expected the deleted record back, got %+v", deleted)
		}

		if _, err := repo.GetByID(ctx, admin.ID); !errors.Is(err, repositories.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})
}
