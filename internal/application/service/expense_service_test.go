package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	infraRepo "github.com/sridharvel/annapoorna-pos/internal/infrastructure/repository"
	"github.com/sridharvel/annapoorna-pos/pkg/apperror"
	"gorm.io/gorm"
)

func newExpenseService(t *testing.T) (*ExpenseService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewExpenseService(infraRepo.NewExpenseRepository(db)), db
}

func TestAddExpenseDefaultsToToday(t *testing.T) {
	svc, _ := newExpenseService(t)

	expense, err := svc.AddExpense(context.Background(), "Milk", decimal.NewFromInt(120), "")
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	today := time.Now().Format(entity.DateLayout)
	if expense.ExpenseDate != today {
		t.Fatalf("date = %q, want today %q", expense.ExpenseDate, today)
	}
}

func TestAddExpenseRequiresDescription(t *testing.T) {
	svc, _ := newExpenseService(t)

	_, err := svc.AddExpense(context.Background(), "", decimal.NewFromInt(50), "")
	if err == nil {
		t.Fatal("accepted expense without description")
	}
	if code := apperror.GetAppError(err).Code; code != 422 {
		t.Fatalf("got code %d, want 422", code)
	}
}

func TestAddExpenseRejectsNegativeAmount(t *testing.T) {
	svc, _ := newExpenseService(t)

	_, err := svc.AddExpense(context.Background(), "Milk", decimal.NewFromInt(-10), "")
	if err == nil {
		t.Fatal("accepted negative amount")
	}
}

func TestUpdateExpense(t *testing.T) {
	svc, db := newExpenseService(t)
	ctx := context.Background()

	seeded := seedExpense(t, db, "2026-08-30", "Vegetabels", 60)

	updated, err := svc.UpdateExpense(ctx, seeded.ID, "Vegetables", decimal.NewFromInt(65), "2026-08-30")
	if err != nil {
		t.Fatalf("UpdateExpense: %v", err)
	}
	if updated.Description != "Vegetables" {
		t.Fatalf("description = %q", updated.Description)
	}
	decEq(t, updated.Amount, 65, "updated amount")
}

func TestUpdateExpenseUnknownID(t *testing.T) {
	svc, _ := newExpenseService(t)

	_, err := svc.UpdateExpense(context.Background(), 9, "Milk", decimal.NewFromInt(10), "2026-08-30")
	if err == nil {
		t.Fatal("expected error for unknown expense")
	}
	if code := apperror.GetAppError(err).Code; code != 404 {
		t.Fatalf("got code %d, want 404", code)
	}
}

func TestDeleteExpense(t *testing.T) {
	svc, db := newExpenseService(t)
	ctx := context.Background()

	seeded := seedExpense(t, db, "2026-08-30", "Milk", 120)

	if err := svc.DeleteExpense(ctx, seeded.ID); err != nil {
		t.Fatalf("DeleteExpense: %v", err)
	}

	var count int64
	db.Model(&entity.Expense{}).Count(&count)
	if count != 0 {
		t.Fatal("expense row survived delete")
	}

	if err := svc.DeleteExpense(ctx, seeded.ID); err == nil {
		t.Fatal("deleting twice should fail")
	}
}

func TestGetExpensesByDateRange(t *testing.T) {
	svc, db := newExpenseService(t)
	ctx := context.Background()

	seedExpense(t, db, "2026-08-28", "Gas", 900)
	seedExpense(t, db, "2026-08-29", "Milk", 120)
	seedExpense(t, db, "2026-08-30", "Vegetables", 60)

	expenses, err := svc.GetExpensesByDateRange(ctx, "2026-08-29", "2026-08-30")
	if err != nil {
		t.Fatalf("GetExpensesByDateRange: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("got %d expenses, want 2", len(expenses))
	}
}

func TestGetExpensesRejectsReversedRange(t *testing.T) {
	svc, _ := newExpenseService(t)

	_, err := svc.GetExpensesByDateRange(context.Background(), "2026-08-30", "2026-08-01")
	if err == nil {
		t.Fatal("accepted reversed range")
	}
	if code := apperror.GetAppError(err).Code; code != 422 {
		t.Fatalf("got code %d, want 422", code)
	}
}
