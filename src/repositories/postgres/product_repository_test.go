package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/greenmarket/admin-server/src/database"
	"github.com/greenmarket/admin-server/src/models"
	"github.com/greenmarket/admin-server/src/repositories"
)

func newStoredProduct(adminID uuid.UUID, title string) *models.Product {
	return &models.Product{
		ID:        uuid.New(),
		Title:     title,
		Price:     2.5,
		Units:     "kg",
		Desc:      "Test product",
		Urls:      []string{},
		Info:      []string{},
		Available: true,
		AdminID:   adminID,
	}
}

func TestProductRepository_CreateAndList(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		admins := NewAdminRepository(tdb.Pool)
		repo := NewProductRepository(tdb.Pool)
		ctx := context.Background()

		creator := createCreator(t, admins, "creator")

		product := newStoredProduct(creator.ID, "Carrots")
		product.Urls = []string{"https://example.com/carrots.jpg"}
		product.Info = []string{"Country: local"}
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		products, total, err := repo.List(ctx, 10, 0)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 1 || len(products) != 1 {
			t.Fatalf("expected 1 product, got %d (total %d)", len(products), total)
		}

		got := products[0]
		if got.Title != "Carrots" || got.Units != "kg" {
			t.Errorf("unexpected record: %+v", got)
		}
		if len(got.Urls) != 1 || got.Urls[0] != "https://example.com/carrots.jpg" {
			t.Errorf("urls array did not round-trip: %v", got.Urls)
		}
		if len(got.Info) != 1 || got.Info[0] != "Country: local" {
			t.Errorf("info array did not round-trip: %v", got.Info)
		}
		if got.Admin == nil || got.Admin.Username != "creator" {
			t.Errorf("expected the creator populated by the join, got %+v", got.Admin)
		}
	})
}

func TestProductRepository_Pagination(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		admins := NewAdminRepository(tdb.Pool)
		repo := NewProductRepository(tdb.Pool)
		ctx := context.Background()

		creator := createCreator(t, admins, "creator")

		for i := 0; i < 5; i++ {
			p := newStoredProduct(creator.ID, fmt.Sprintf("Product %d", i))
			if err := repo.Create(ctx, p); err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			time.Sleep(10 * time.Millisecond)
		}

		page, total, err := repo.List(ctx, 2, 1)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 5 {
			t.Errorf("expected total 5 regardless of the page, got %d", total)
		}
		if len(page) != 2 {
			t.Fatalf("expected a page of 2, got %d", len(page))
		}
		// Newest-first: skipping one from the top lands on products 3 and 2
		if page[0].Title != "Product 3" || page[1].Title != "Product 2" {
			t.Errorf("unexpected page ordering: %s, %s", page[0].Title, page[1].Title)
		}
	})
}

func TestProductRepository_ListBeyondEnd(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		admins := NewAdminRepository(tdb.Pool)
		repo := NewProductRepository(tdb.Pool)
		ctx := context.Background()

		creator := createCreator(t, admins, "creator")
		if err := repo.Create(ctx, newStoredProduct(creator.ID, "Carrots")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		page, total, err := repo.List(ctx, 10, 100)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(page) != 0 {
			t.Errorf("expected an empty page past the end, got %d records", len(page))
		}
		if total != 1 {
			t.Errorf("expected total 1, got %d", total)
		}
	})
}

func TestProductRepository_PartialUpdate(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		admins := NewAdminRepository(tdb.Pool)
		repo := NewProductRepository(tdb.Pool)
		ctx := context.Background()

		creator := createCreator(t, admins, "creator")
		product := newStoredProduct(creator.ID, "Carrots")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		stock := 15
		available := false
		updated, err := repo.Update(ctx, product.ID, models.ProductUpdate{
			Stock:     &stock,
			Available: &available,
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Stock != 15 {
			t.Errorf("expected stock 15, got %d", updated.Stock)
		}
		if updated.Available {
			t.Error("expected available false after update")
		}
		if updated.Title != "Carrots" || updated.Price != 2.5 {
			t.Errorf("untouched fields must survive, got %+v", updated)
		}
	})
}

func TestProductRepository_CategoryAssignment(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		admins := NewAdminRepository(tdb.Pool)
		categories := NewCategoryRepository(tdb.Pool)
		repo := NewProductRepository(tdb.Pool)
		ctx := context.Background()

		creator := createCreator(t, admins, "creator")
		category := &models.Category{ID: uuid.New(), CategoryName: "Vegetables", UserID: creator.ID}
		if err := categories.Create(ctx, category); err != nil {
			t.Fatalf("category Create failed: %v", err)
		}

		product := newStoredProduct(creator.ID, "Carrots")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		updated, err := repo.Update(ctx, product.ID, models.ProductUpdate{CategoryID: &category.ID})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.CategoryID == nil || *updated.CategoryID != category.ID {
			t.Errorf("expected category assignment, got %v", updated.CategoryID)
		}
	})
}

func TestProductRepository_DeleteReturnsRecord(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		admins := NewAdminRepository(tdb.Pool)
		repo := NewProductRepository(tdb.Pool)
		ctx := context.Background()

		creator := createCreator(t, admins, "creator")
		product := newStoredProduct(creator.ID, "Carrots")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		deleted, err := repo.Delete(ctx, product.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if deleted.Title != "Carrots" {
			t.Errorf("expected the deleted record back, got %+v", deleted)
		}

		if _, err := repo.Delete(ctx, product.ID); !errors.Is(err, repositories.ErrNotFound) {
			t.Errorf("expected ErrNotFound for a second delete, got %v", err)
		}
	})
}
