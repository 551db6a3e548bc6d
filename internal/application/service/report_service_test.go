package service

import (
	"context"
	"testing"

	"github.com/sridharvel/annapoorna-pos/internal/domain/enum"
	infraRepo "github.com/sridharvel/annapoorna-pos/internal/infrastructure/repository"
	"github.com/sridharvel/annapoorna-pos/pkg/apperror"
)

func TestDailyRecordsSplitsCashAndCredit(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	item := seedItem(t, db, "தோசை", "Dosa", 40)
	mani := seedCustomer(t, db, "Mani")

	seedBill(t, db, "2026-08-30T08:15:00", 100, item.ID, nil)
	seedBill(t, db, "2026-08-30T13:40:00", 50, item.ID, &mani.ID)
	seedBill(t, db, "2026-08-30T19:05:00", 30, item.ID, nil)
	seedExpense(t, db, "2026-08-30", "Vegetables", 60)

	records, err := svc.DailyRecords(ctx, "2026-08-30", "2026-08-30")
	if err != nil {
		t.Fatalf("DailyRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	day := records[0]
	if day.Date != "2026-08-30" {
		t.Fatalf("date = %q", day.Date)
	}
	decEq(t, day.CashSales, 130, "cash sales")
	decEq(t, day.CreditSales, 50, "credit sales")
	decEq(t, day.TotalSales, 180, "total sales")
	if day.BillCount != 3 {
		t.Fatalf("bill count = %d, want 3", day.BillCount)
	}
	decEq(t, day.TotalExpenses, 60, "expenses")
	decEq(t, day.Profit, 120, "profit")
}

func TestDailyRecordsExpenseOnlyDay(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	item := seedItem(t, db, "தோசை", "Dosa", 40)
	seedBill(t, db, "2026-08-29T10:00:00", 200, item.ID, nil)
	// The shop was closed on the 30th but the gas cylinder was paid for.
	seedExpense(t, db, "2026-08-30", "Gas cylinder", 900)

	records, err := svc.DailyRecords(ctx, "2026-08-29", "2026-08-31")
	if err != nil {
		t.Fatalf("DailyRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Ordered date descending, so the closed day comes first.
	closed := records[0]
	if closed.Date != "2026-08-30" {
		t.Fatalf("first record is %q, want 2026-08-30", closed.Date)
	}
	decEq(t, closed.TotalSales, 0, "closed-day sales")
	if closed.BillCount != 0 {
		t.Fatalf("closed-day bill count = %d", closed.BillCount)
	}
	decEq(t, closed.TotalExpenses, 900, "closed-day expenses")
	decEq(t, closed.Profit, -900, "closed-day profit")

	if records[1].Date != "2026-08-29" {
		t.Fatalf("second record is %q, want 2026-08-29", records[1].Date)
	}
	decEq(t, records[1].Profit, 200, "open-day profit")
}

func TestDailyRecordsRangeIsInclusive(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	item := seedItem(t, db, "தோசை", "Dosa", 40)
	seedBill(t, db, "2026-08-28T09:00:00", 10, item.ID, nil)
	seedBill(t, db, "2026-08-29T09:00:00", 20, item.ID, nil)
	seedBill(t, db, "2026-08-30T09:00:00", 30, item.ID, nil)
	seedBill(t, db, "2026-08-31T09:00:00", 40, item.ID, nil)

	records, err := svc.DailyRecords(ctx, "2026-08-29", "2026-08-30")
	if err != nil {
		t.Fatalf("DailyRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (both endpoints included)", len(records))
	}
	if records[0].Date != "2026-08-30" || records[1].Date != "2026-08-29" {
		t.Fatalf("records cover %q and %q", records[0].Date, records[1].Date)
	}
}

func TestDailyRecordsRejectsReversedRange(t *testing.T) {
	svc, _ := newReportService(t)

	_, err := svc.DailyRecords(context.Background(), "2026-08-31", "2026-08-01")
	if err == nil {
		t.Fatal("expected error for reversed range")
	}
	if code := apperror.GetAppError(err).Code; code != 422 {
		t.Fatalf("got code %d, want 422", code)
	}
}

func TestDailyRecordsRejectsMalformedDate(t *testing.T) {
	svc, _ := newReportService(t)

	for _, bad := range []string{"31-08-2026", "2026-13-01", "yesterday"} {
		if _, err := svc.DailyRecords(context.Background(), bad, "2026-08-31"); err == nil {
			t.Fatalf("accepted malformed date %q", bad)
		}
	}
}

func TestBillsByDateAnnotatesType(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	item := seedItem(t, db, "தோசை", "Dosa", 40)
	mani := seedCustomer(t, db, "Mani")
	seedBill(t, db, "2026-08-30T08:00:00", 40, item.ID, nil)
	seedBill(t, db, "2026-08-30T09:00:00", 80, item.ID, &mani.ID)

	bills, err := svc.BillsByDate(ctx, "2026-08-30")
	if err != nil {
		t.Fatalf("BillsByDate: %v", err)
	}
	if len(bills) != 2 {
		t.Fatalf("got %d bills, want 2", len(bills))
	}

	// Newest first.
	if bills[0].BillType != enum.BillTypeCredit {
		t.Fatalf("first bill type = %q, want CREDIT", bills[0].BillType)
	}
	if bills[0].CustomerName == nil || *bills[0].CustomerName != "Mani" {
		t.Fatal("credit bill is missing the customer name")
	}
	if bills[1].BillType != enum.BillTypeCash {
		t.Fatalf("second bill type = %q, want CASH", bills[1].BillType)
	}
	if bills[1].CustomerName != nil {
		t.Fatal("cash bill should have no customer name")
	}
}

func TestCustomerBalanceIsDerived(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	item := seedItem(t, db, "தோசை", "Dosa", 40)
	mani := seedCustomer(t, db, "Mani")

	seedBill(t, db, "2026-08-28T10:00:00", 300, item.ID, &mani.ID)
	seedBill(t, db, "2026-08-29T10:00:00", 200, item.ID, &mani.ID)
	seedPayment(t, db, mani.ID, "2026-08-30", 350)

	detail, err := svc.CustomerDetail(ctx, mani.ID)
	if err != nil {
		t.Fatalf("CustomerDetail: %v", err)
	}
	if detail == nil {
		t.Fatal("detail is nil for an existing customer")
	}

	decEq(t, detail.TotalCredit, 500, "total credit")
	decEq(t, detail.TotalPaid, 350, "total paid")
	decEq(t, detail.Balance, 150, "balance")
	if len(detail.Bills) != 2 {
		t.Fatalf("got %d bills, want 2", len(detail.Bills))
	}
	if len(detail.Payments) != 1 {
		t.Fatalf("got %d payments, want 1", len(detail.Payments))
	}

	// Bill history is newest first.
	if detail.Bills[0].Date != "2026-08-29" {
		t.Fatalf("first bill date = %q, want 2026-08-29", detail.Bills[0].Date)
	}
}

func TestCustomerBalanceReflectsBillEdit(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	item := seedItem(t, db, "தோசை", "Dosa", 40)
	mani := seedCustomer(t, db, "Mani")
	bill := seedBill(t, db, "2026-08-30T10:00:00", 100, item.ID, &mani.ID)

	// Nothing is stored for the balance, so editing the bill's total must
	// show up immediately.
	if err := db.Model(bill).Update("total_amount", 70).Error; err != nil {
		t.Fatalf("edit bill: %v", err)
	}

	detail, err := svc.CustomerDetail(ctx, mani.ID)
	if err != nil {
		t.Fatalf("CustomerDetail: %v", err)
	}
	decEq(t, detail.Balance, 70, "balance after edit")
}

func TestCustomerDetailUnknownCustomer(t *testing.T) {
	svc, _ := newReportService(t)

	detail, err := svc.CustomerDetail(context.Background(), 77)
	if err != nil {
		t.Fatalf("CustomerDetail returned error for missing id: %v", err)
	}
	if detail != nil {
		t.Fatal("expected nil detail for unknown customer")
	}
}

func TestCustomerSummariesZeroActivity(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	seedCustomer(t, db, "Velu")

	summaries, err := svc.CustomerSummaries(ctx)
	if err != nil {
		t.Fatalf("CustomerSummaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	decEq(t, summaries[0].TotalCredit, 0, "credit with no bills")
	decEq(t, summaries[0].Balance, 0, "balance with no activity")
}

func TestDeletedCustomerBillsReadAsCash(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	item := seedItem(t, db, "தோசை", "Dosa", 40)
	mani := seedCustomer(t, db, "Mani")
	seedBill(t, db, "2026-08-30T10:00:00", 100, item.ID, &mani.ID)

	creditRepo := infraRepo.NewCreditRepository(db)
	if err := creditRepo.DeleteCustomer(ctx, mani.ID); err != nil {
		t.Fatalf("DeleteCustomer: %v", err)
	}

	// With the credit link gone, the bill re-aggregates as a cash sale.
	records, err := svc.DailyRecords(ctx, "2026-08-30", "2026-08-30")
	if err != nil {
		t.Fatalf("DailyRecords: %v", err)
	}
	decEq(t, records[0].CashSales, 100, "cash sales after customer delete")
	decEq(t, records[0].CreditSales, 0, "credit sales after customer delete")
}
