package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	infraRepo "github.com/sridharvel/annapoorna-pos/internal/infrastructure/repository"
	"github.com/sridharvel/annapoorna-pos/pkg/apperror"
	"gorm.io/gorm"
)

func newCatalogService(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewCatalogService(infraRepo.NewItemRepository(db)), db
}

func TestAddItemDefaults(t *testing.T) {
	svc, _ := newCatalogService(t)

	item, err := svc.AddItem(context.Background(), &ItemInput{
		NameLocal:  "பொங்கல்",
		NameCommon: "Pongal",
		Price:      decimal.NewFromInt(35),
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if !item.IsActive {
		t.Fatal("new item should be active")
	}
	if item.Category != "Others" {
		t.Fatalf("category = %q, want default Others", item.Category)
	}
}

func TestAddItemRequiresBothNames(t *testing.T) {
	svc, _ := newCatalogService(t)

	cases := []ItemInput{
		{NameLocal: "", NameCommon: "Pongal", Price: decimal.NewFromInt(35)},
		{NameLocal: "பொங்கல்", NameCommon: "", Price: decimal.NewFromInt(35)},
	}
	for _, in := range cases {
		if _, err := svc.AddItem(context.Background(), &in); err == nil {
			t.Fatalf("accepted item with missing name: %+v", in)
		}
	}
}

func TestAddItemRejectsNegativePrice(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.AddItem(context.Background(), &ItemInput{
		NameLocal:  "பொங்கல்",
		NameCommon: "Pongal",
		Price:      decimal.NewFromInt(-1),
	})
	if err == nil {
		t.Fatal("accepted negative price")
	}
	if code := apperror.GetAppError(err).Code; code != 422 {
		t.Fatalf("got code %d, want 422", code)
	}
}

func TestDeleteItemRefusedWhenBilled(t *testing.T) {
	svc, db := newCatalogService(t)
	ctx := context.Background()

	item := seedItem(t, db, "தோசை", "Dosa", 40)
	seedBill(t, db, "2026-08-30T09:00:00", 40, item.ID, nil)

	err := svc.DeleteItem(ctx, item.ID)
	if err == nil {
		t.Fatal("expected conflict for billed item")
	}
	if code := apperror.GetAppError(err).Code; code != 409 {
		t.Fatalf("got code %d, want 409", code)
	}

	// The item row must survive the refused delete.
	var count int64
	db.Model(&entity.Item{}).Where("id = ?", item.ID).Count(&count)
	if count != 1 {
		t.Fatal("item row was deleted despite the conflict")
	}
}

func TestDeleteUnbilledItem(t *testing.T) {
	svc, db := newCatalogService(t)
	ctx := context.Background()

	item := seedItem(t, db, "தோசை", "Dosa", 40)

	if err := svc.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	var count int64
	db.Model(&entity.Item{}).Where("id = ?", item.ID).Count(&count)
	if count != 0 {
		t.Fatal("item row survived delete")
	}
}

func TestToggleItemHidesFromMenu(t *testing.T) {
	svc, db := newCatalogService(t)
	ctx := context.Background()

	dosa := seedItem(t, db, "தோசை", "Dosa", 40)
	seedItem(t, db, "இட்லி", "Idli", 10)

	if err := svc.ToggleItemStatus(ctx, dosa.ID, false); err != nil {
		t.Fatalf("ToggleItemStatus: %v", err)
	}

	active, err := svc.ListActiveItems(ctx)
	if err != nil {
		t.Fatalf("ListActiveItems: %v", err)
	}
	if len(active) != 1 || active[0].NameCommon != "Idli" {
		t.Fatalf("active menu = %+v, want only Idli", active)
	}

	all, err := svc.ListAllItems(ctx)
	if err != nil {
		t.Fatalf("ListAllItems: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin list has %d items, want 2", len(all))
	}
}

func TestUpdateItemKeepsCategoryWhenOmitted(t *testing.T) {
	svc, db := newCatalogService(t)
	ctx := context.Background()

	item := seedItem(t, db, "தோசை", "Dosa", 40)
	if err := db.Model(item).Update("category", "Tiffin").Error; err != nil {
		t.Fatalf("set category: %v", err)
	}

	updated, err := svc.UpdateItem(ctx, item.ID, &ItemInput{
		NameLocal:  "தோசை",
		NameCommon: "Dosa",
		Price:      decimal.NewFromInt(45),
	})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Category != "Tiffin" {
		t.Fatalf("category = %q, want Tiffin preserved", updated.Category)
	}
	decEq(t, updated.Price, 45, "updated price")
}
