package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamebook/gamebook-api/internal/domain/repository"
)

func newTestCustomerService(t *testing.T) (*CustomerService, *fakeCustomerRepo, *fakeReceiptRepo, *fakeCounterRepo, *fakeReportRepo) {
	t.Helper()

	customerRepo := newFakeCustomerRepo()
	receiptRepo := newFakeReceiptRepo()
	counterRepo := newFakeCounterRepo()
	reportRepo := &fakeReportRepo{}

	svc := NewCustomerService(customerRepo, receiptRepo, counterRepo, &fakeActivityRepo{}, reportRepo, zap.NewNop())
	return svc, customerRepo, receiptRepo, counterRepo, reportRepo
}

func TestCreateCustomerAssignsSequentialSrNo(t *testing.T) {
	svc, _, _, _, _ := newTestCustomerService(t)
	vendorID := uuid.New()

	first, err := svc.Create(context.Background(), vendorID, &CreateCustomerInput{Name: "Ramesh"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(context.Background(), vendorID, &CreateCustomerInput{Name: "Suresh"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if first.SrNo != 1 || second.SrNo != 2 {
		t.Errorf("serials = %d, %d, want 1, 2", first.SrNo, second.SrNo)
	}
}

func TestCreateCustomerRejectsDuplicateName(t *testing.T) {
	svc, _, _, _, _ := newTestCustomerService(t)
	vendorID := uuid.New()

	if _, err := svc.Create(context.Background(), vendorID, &CreateCustomerInput{Name: "Ramesh"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), vendorID, &CreateCustomerInput{Name: "Ramesh"}); err == nil {
		t.Error("expected duplicate name to be rejected")
	}
	if _, err := svc.Create(context.Background(), vendorID, &CreateCustomerInput{Name: ""}); err == nil {
		t.Error("expected empty name to be rejected")
	}
}

func TestListEnrichesWithLatestBalance(t *testing.T) {
	svc, _, _, _, reportRepo := newTestCustomerService(t)
	vendorID := uuid.New()

	customer, err := svc.Create(context.Background(), vendorID, &CreateCustomerInput{Name: "Ramesh"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	reportRepo.balances = []repository.CustomerBalanceResult{
		{CustomerID: customer.ID, CustomerName: "Ramesh", Date: "2025-07-14", Balance: 398, AdvanceAmount: 50},
	}

	list, err := svc.List(context.Background(), vendorID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].LatestBalance != 398 || list[0].AdvanceAmount != 50 || list[0].LastReceiptDate != "2025-07-14" {
		t.Errorf("enrichment = %+v", list[0])
	}
}

func TestUpdateBalanceRequiresExactlyOneSide(t *testing.T) {
	svc, _, _, _, _ := newTestCustomerService(t)
	vendorID := uuid.New()

	customer, err := svc.Create(context.Background(), vendorID, &CreateCustomerInput{Name: "Ramesh"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	yene, dene := 100.0, 50.0
	if _, err := svc.UpdateBalance(context.Background(), vendorID, customer.ID, &UpdateBalanceInput{}); err == nil {
		t.Error("expected neither side to be rejected")
	}
	if _, err := svc.UpdateBalance(context.Background(), vendorID, customer.ID, &UpdateBalanceInput{Yene: &yene, Dene: &dene}); err == nil {
		t.Error("expected both sides to be rejected")
	}
}

func TestUpdateBalanceCreatesAdjustmentReceipt(t *testing.T) {
	svc, _, receiptRepo, _, _ := newTestCustomerService(t)
	vendorID := uuid.New()

	customer, err := svc.Create(context.Background(), vendorID, &CreateCustomerInput{Name: "Ramesh"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	dene := 250.0
	receipt, err := svc.UpdateBalance(context.Background(), vendorID, customer.ID, &UpdateBalanceInput{Dene: &dene})
	if err != nil {
		t.Fatalf("UpdateBalance: %v", err)
	}

	if receipt.FinalTotalAfterChuk != -250 {
		t.Errorf("FinalTotalAfterChuk = %v, want -250", receipt.FinalTotalAfterChuk)
	}
	if receipt.FinalTotal != -250 {
		t.Errorf("FinalTotal = %v, want -250", receipt.FinalTotal)
	}
	if len(receiptRepo.receipts) != 1 {
		t.Errorf("receipts = %d, want 1", len(receiptRepo.receipts))
	}
}

func TestUpdateBalanceOverwritesLatestReceipt(t *testing.T) {
	svc, _, receiptRepo, _, _ := newTestCustomerService(t)
	vendorID := uuid.New()

	customer, err := svc.Create(context.Background(), vendorID, &CreateCustomerInput{Name: "Ramesh"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	yene := 100.0
	first, err := svc.UpdateBalance(context.Background(), vendorID, customer.ID, &UpdateBalanceInput{Yene: &yene})
	if err != nil {
		t.Fatalf("UpdateBalance: %v", err)
	}

	advance := 30.0
	yene = 500.0
	second, err := svc.UpdateBalance(context.Background(), vendorID, customer.ID, &UpdateBalanceInput{Yene: &yene, AdvanceAmount: &advance})
	if err != nil {
		t.Fatalf("UpdateBalance: %v", err)
	}

	if second.ID != first.ID {
		t.Error("expected the latest receipt to be reused, not a new one created")
	}
	if second.FinalTotalAfterChuk != 500 {
		t.Errorf("FinalTotalAfterChuk = %v, want 500", second.FinalTotalAfterChuk)
	}
	if second.FinalTotal != 470 {
		t.Errorf("FinalTotal = %v, want 470", second.FinalTotal)
	}
	if len(receiptRepo.receipts) != 1 {
		t.Errorf("receipts = %d, want 1", len(receiptRepo.receipts))
	}
}
