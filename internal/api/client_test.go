package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NirunaShyamal/farm-sub001/internal/models"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL + "/api"), srv
}

func TestClient_List(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/egg-production" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("Unexpected method %s", r.Method)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []models.ProductionRecord{
				{ID: "1", BatchNumber: "Batch-001", EggsCollected: 100},
				{ID: "2", BatchNumber: "Batch-002", EggsCollected: 120},
			},
		})
	})
	defer srv.Close()

	var records []models.ProductionRecord
	if err := client.List(context.Background(), CollectionEggProduction, &records); err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].BatchNumber != "Batch-001" {
		t.Errorf("Expected Batch-001, got %s", records[0].BatchNumber)
	}
}

func TestClient_Create_DecodesServerRecord(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var draft models.ProductionRecord
		json.NewDecoder(r.Body).Decode(&draft)
		draft.ID = "server-assigned"
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": draft})
	})
	defer srv.Close()

	draft := models.ProductionRecord{
		Date:          "25/12/2024",
		BatchNumber:   "Batch-001",
		Birds:         100,
		EggsCollected: 80,
	}
	var created models.ProductionRecord
	if err := client.Create(context.Background(), CollectionEggProduction, draft, &created); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != "server-assigned" {
		t.Errorf("Expected server-assigned id, got %q", created.ID)
	}
}

func TestClient_ServerMessagePreferred(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "batch number already exists"})
	})
	defer srv.Close()

	err := client.Delete(context.Background(), CollectionEggProduction, "9")
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Expected HTTPError, got %T (%v)", err, err)
	}
	if httpErr.Status != http.StatusConflict {
		t.Errorf("Expected 409, got %d", httpErr.Status)
	}
	if httpErr.Message != "batch number already exists" {
		t.Errorf("Expected server message, got %q", httpErr.Message)
	}
}

func TestClient_GenericFailureWhenNoMessage(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": false}`))
	})
	defer srv.Close()

	err := client.Health(context.Background())
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Expected HTTPError, got %T", err)
	}
	if httpErr.Message != GenericFailure {
		t.Errorf("Expected %q, got %q", GenericFailure, httpErr.Message)
	}
}

func TestClient_EnvelopeFailureWith200(t *testing.T) {
	// success:false must surface even when the status line is 200.
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "mail relay down"})
	})
	defer srv.Close()

	err := client.SendContact(context.Background(), models.ContactMessage{
		Name: "A", Email: "a@farm.lk", Message: "hello",
	})
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Expected HTTPError, got %T (%v)", err, err)
	}
	if httpErr.Message != "mail relay down" {
		t.Errorf("Expected relay message, got %q", httpErr.Message)
	}
}

func TestClient_TransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1/api") // nothing listens here

	err := client.Health(context.Background())
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("Expected TransportError, got %T (%v)", err, err)
	}
}

func TestClient_ValidationRejectsBeforeRequest(t *testing.T) {
	requested := false
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	})
	defer srv.Close()

	draft := models.ProductionRecord{BatchNumber: "Batch-001"} // missing date
	err := client.Create(context.Background(), CollectionEggProduction, draft, nil)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("Expected ValidationError, got %T (%v)", err, err)
	}
	if requested {
		t.Error("Invalid draft must not reach the server")
	}
}

func TestClient_Update(t *testing.T) {
	var gotPath, gotMethod string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	defer srv.Close()

	task := models.Task{
		ID: "3", Date: "01/02/25", TaskDescription: "Clean coop B",
		Category: models.TaskCleaning, AssignedTo: "Nimal", Status: models.TaskPending,
	}
	if err := client.Update(context.Background(), CollectionTaskScheduling, "3", task); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/task-scheduling/3" {
		t.Errorf("Unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestClient_Summary(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/egg-production/summary" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    models.ProductionSummary{TotalEggs: 540, TotalDamagedEggs: 12},
		})
	})
	defer srv.Close()

	var s models.ProductionSummary
	if err := client.Summary(context.Background(), CollectionEggProduction, &s); err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if s.TotalEggs != 540 {
		t.Errorf("Expected 540, got %d", s.TotalEggs)
	}
}
