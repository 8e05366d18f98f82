package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestShortcutService(t *testing.T) (*ShortcutService, *fakeReceiptRepo, *fakeCustomerRepo) {
	t.Helper()

	receiptRepo := newFakeReceiptRepo()
	customerRepo := newFakeCustomerRepo()

	svc := NewShortcutService(receiptRepo, customerRepo, zap.NewNop())
	return svc, receiptRepo, customerRepo
}

func TestApplyIncomesCreatesReceipts(t *testing.T) {
	svc, receiptRepo, customerRepo := newTestShortcutService(t)
	vendorID := uuid.New()
	first := seedCustomer(t, customerRepo, vendorID, "Ramesh")

	result, err := svc.ApplyIncomes(context.Background(), vendorID, "Big Bazaar", &BulkIncomeInput{
		Date: "2025-07-14",
		Entries: []IncomeEntry{
			{CustomerID: first.ID, GameType: "आ.", Income: "500"},
		},
	})
	if err != nil {
		t.Fatalf("ApplyIncomes: %v", err)
	}

	if result.Applied != 1 || result.Failed != 0 {
		t.Fatalf("applied/failed = %d/%d, want 1/0", result.Applied, result.Failed)
	}
	if !result.Results[0].Created {
		t.Error("expected a new receipt to be created")
	}

	receipt := receiptRepo.receipts[*result.Results[0].ReceiptID]
	if len(receipt.GameRows) != 1 {
		t.Fatalf("rows = %d, want 1", len(receipt.GameRows))
	}
	row := receipt.GameRows[0]
	if row.Type != "आ." || row.Income != "500" {
		t.Errorf("row = %+v", row)
	}
	if row.Multiplier == nil || *row.Multiplier != 8 {
		t.Errorf("multiplier = %v, want 8", row.Multiplier)
	}
	if receipt.TotalIncome != 500 {
		t.Errorf("TotalIncome = %v, want 500", receipt.TotalIncome)
	}
}

func TestApplyIncomesOverwritesExistingRow(t *testing.T) {
	svc, receiptRepo, customerRepo := newTestShortcutService(t)
	vendorID := uuid.New()
	customer := seedCustomer(t, customerRepo, vendorID, "Ramesh")

	for _, income := range []string{"500", "750"} {
		if _, err := svc.ApplyIncomes(context.Background(), vendorID, "", &BulkIncomeInput{
			Date:    "2025-07-14",
			Entries: []IncomeEntry{{CustomerID: customer.ID, GameType: "कु.", Income: income}},
		}); err != nil {
			t.Fatalf("ApplyIncomes: %v", err)
		}
	}

	if len(receiptRepo.receipts) != 1 {
		t.Fatalf("receipts = %d, want 1", len(receiptRepo.receipts))
	}
	for _, receipt := range receiptRepo.receipts {
		if len(receipt.GameRows) != 1 {
			t.Fatalf("rows = %d, want 1", len(receipt.GameRows))
		}
		if receipt.GameRows[0].Income != "750" {
			t.Errorf("income = %q, want 750", receipt.GameRows[0].Income)
		}
	}
}

func TestApplyIncomesReportsPartialFailures(t *testing.T) {
	svc, _, customerRepo := newTestShortcutService(t)
	vendorID := uuid.New()
	customer := seedCustomer(t, customerRepo, vendorID, "Ramesh")

	result, err := svc.ApplyIncomes(context.Background(), vendorID, "", &BulkIncomeInput{
		Date: "2025-07-14",
		Entries: []IncomeEntry{
			{CustomerID: customer.ID, GameType: "आ.", Income: "100"},
			{CustomerID: uuid.New(), GameType: "आ.", Income: "200"},
			{CustomerID: customer.ID, GameType: "pan", Income: "300"},
		},
	})
	if err != nil {
		t.Fatalf("ApplyIncomes: %v", err)
	}

	if result.Applied != 1 || result.Failed != 2 {
		t.Fatalf("applied/failed = %d/%d, want 1/2", result.Applied, result.Failed)
	}
	if result.Results[1].Error == "" {
		t.Error("unknown customer should report an error")
	}
	if result.Results[2].Error == "" {
		t.Error("non-multiplier game type should report an error")
	}
}

func TestApplyIncomesValidation(t *testing.T) {
	svc, _, _ := newTestShortcutService(t)
	vendorID := uuid.New()

	if _, err := svc.ApplyIncomes(context.Background(), vendorID, "", &BulkIncomeInput{Date: "bad-date"}); err == nil {
		t.Error("expected malformed date to be rejected")
	}
	if _, err := svc.ApplyIncomes(context.Background(), vendorID, "", &BulkIncomeInput{Date: "2025-07-14"}); err == nil {
		t.Error("expected empty entries to be rejected")
	}
}
