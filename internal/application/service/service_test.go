package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	"github.com/sridharvel/annapoorna-pos/internal/infrastructure/database"
	infraRepo "github.com/sridharvel/annapoorna-pos/internal/infrastructure/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema.
// The single-connection limit keeps the :memory: database alive for the
// whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func seedItem(t *testing.T, db *gorm.DB, local, common string, price int64) *entity.Item {
	t.Helper()

	item := &entity.Item{
		NameLocal:  local,
		NameCommon: common,
		Price:      decimal.NewFromInt(price),
		Category:   "Others",
		IsActive:   true,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed item %q: %v", common, err)
	}
	return item
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *entity.CreditCustomer {
	t.Helper()

	customer := &entity.CreditCustomer{Name: name}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("seed customer %q: %v", name, err)
	}
	return customer
}

// newBillingService wires a billing service over a fresh database and
// returns both so tests can inspect raw rows.
func newBillingService(t *testing.T) (*BillingService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := NewBillingService(
		infraRepo.NewBillRepository(db),
		infraRepo.NewItemRepository(db),
		infraRepo.NewCreditRepository(db),
	)
	return svc, db
}

func newReportService(t *testing.T) (*ReportService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := NewReportService(
		infraRepo.NewReportRepository(db),
		infraRepo.NewExpenseRepository(db),
	)
	return svc, db
}

// seedBill inserts a bill with explicit timestamp and lines directly, for
// report tests that need bills on known dates. customerID non-nil makes it
// a credit bill.
func seedBill(t *testing.T, db *gorm.DB, createdAt string, total int64, itemID uint, customerID *uint) *entity.Bill {
	t.Helper()

	bill := &entity.Bill{
		CreatedAt:   createdAt,
		TotalAmount: decimal.NewFromInt(total),
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("seed bill: %v", err)
	}
	line := entity.BillLine{
		BillID:   bill.ID,
		ItemID:   itemID,
		Quantity: 1,
		Rate:     decimal.NewFromInt(total),
	}
	if err := db.Create(&line).Error; err != nil {
		t.Fatalf("seed bill line: %v", err)
	}
	if customerID != nil {
		link := entity.CreditBill{BillID: bill.ID, CustomerID: *customerID}
		if err := db.Create(&link).Error; err != nil {
			t.Fatalf("seed credit link: %v", err)
		}
	}
	return bill
}

func seedExpense(t *testing.T, db *gorm.DB, date, description string, amount int64) *entity.Expense {
	t.Helper()

	expense := &entity.Expense{
		ExpenseDate: date,
		Description: description,
		Amount:      decimal.NewFromInt(amount),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("seed expense: %v", err)
	}
	return expense
}

func seedPayment(t *testing.T, db *gorm.DB, customerID uint, date string, amount int64) *entity.CreditPayment {
	t.Helper()

	payment := &entity.CreditPayment{
		CustomerID: customerID,
		Date:       date,
		Amount:     decimal.NewFromInt(amount),
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	return payment
}

func decEq(t *testing.T, got decimal.Decimal, want int64, label string) {
	t.Helper()
	if !got.Equal(decimal.NewFromInt(want)) {
		t.Fatalf("%s = %s, want %d", label, got.String(), want)
	}
}
