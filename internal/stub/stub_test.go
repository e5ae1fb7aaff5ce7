package stub

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/NirunaShyamal/farm-sub001/internal/api"
	"github.com/NirunaShyamal/farm-sub001/internal/models"
)

func newTestBackend(t *testing.T, seeded bool) *api.Client {
	t.Helper()
	srv := httptest.NewServer(NewServer(seeded).Router())
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL + "/api")
}

func TestStub_ListSeeded(t *testing.T) {
	client := newTestBackend(t, true)

	var records []models.ProductionRecord
	if err := client.List(context.Background(), api.CollectionEggProduction, &records); err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 seeded records, got %d", len(records))
	}
	for _, r := range records {
		if r.ID == "" {
			t.Error("Seeded record missing id")
		}
	}
}

func TestStub_CreateAssignsID(t *testing.T) {
	client := newTestBackend(t, false)

	draft := models.ProductionRecord{
		Date: "15/08/2026", BatchNumber: "Batch-001", Birds: 100, EggsCollected: 90, DamagedEggs: 1,
	}
	var out models.ProductionRecord
	if err := client.Create(context.Background(), api.CollectionEggProduction, draft, &out); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.ID == "" {
		t.Fatal("Expected server-assigned id")
	}
	if out.BatchNumber != "Batch-001" {
		t.Errorf("Round-trip lost batch number: %q", out.BatchNumber)
	}
}

func TestStub_UpdateUnknownID(t *testing.T) {
	client := newTestBackend(t, false)

	record := models.ProductionRecord{
		Date: "15/08/2026", BatchNumber: "Batch-001", Birds: 100, EggsCollected: 90,
	}
	err := client.Update(context.Background(), api.CollectionEggProduction, "missing", record)

	var httpErr *api.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Expected HTTPError, got %v", err)
	}
	if httpErr.Status != 404 {
		t.Errorf("Expected 404, got %d", httpErr.Status)
	}
	if httpErr.Message != "Record not found" {
		t.Errorf("Expected server message, got %q", httpErr.Message)
	}
}

func TestStub_DeleteRemoves(t *testing.T) {
	client := newTestBackend(t, true)
	ctx := context.Background()

	var before []models.SalesOrder
	if err := client.List(ctx, api.CollectionSalesOrders, &before); err != nil {
		t.Fatalf("List: %v", err)
	}

	if err := client.Delete(ctx, api.CollectionSalesOrders, before[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var after []models.SalesOrder
	if err := client.List(ctx, api.CollectionSalesOrders, &after); err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(after) != len(before)-1 {
		t.Errorf("Expected %d orders after delete, got %d", len(before)-1, len(after))
	}
}

func TestStub_ProductionSummary(t *testing.T) {
	client := newTestBackend(t, true)

	var s models.ProductionSummary
	if err := client.Summary(context.Background(), api.CollectionEggProduction, &s); err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if s.TotalEggs != 360 {
		t.Errorf("Expected 360 total eggs, got %d", s.TotalEggs)
	}
	if s.TotalDamagedEggs != 15 {
		t.Errorf("Expected 15 damaged, got %d", s.TotalDamagedEggs)
	}
	if s.EggsSold != 90 {
		t.Errorf("Expected 90 eggs sold across orders, got %d", s.EggsSold)
	}
}

func TestStub_HealthAndContact(t *testing.T) {
	client := newTestBackend(t, false)
	ctx := context.Background()

	if err := client.Health(ctx); err != nil {
		t.Fatalf("Health: %v", err)
	}
	if err := client.ContactTest(ctx); err != nil {
		t.Fatalf("ContactTest: %v", err)
	}

	msg := models.ContactMessage{Name: "Niruna", Email: "niruna@example.com", Message: "Feed order query"}
	if err := client.SendContact(ctx, msg); err != nil {
		t.Fatalf("SendContact: %v", err)
	}

	// The stub rejects incomplete messages that bypass client checks.
	err := client.SendContact(ctx, map[string]string{"name": "x"})
	var httpErr *api.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != 400 {
		t.Errorf("Expected 400 for incomplete message, got %v", err)
	}
}
