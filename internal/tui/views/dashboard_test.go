package views

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NirunaShyamal/farm-sub001/internal/api"
	"github.com/NirunaShyamal/farm-sub001/internal/models"
	"github.com/NirunaShyamal/farm-sub001/internal/store"
	"github.com/NirunaShyamal/farm-sub001/internal/stub"
)

func newDashboardClient(t *testing.T) *api.Client {
	t.Helper()

	srv := httptest.NewServer(stub.NewServer(true).Router())
	t.Cleanup(srv.Close)

	return api.NewClient(srv.URL + "/api")
}

func newDashboardFixture(t *testing.T, client *api.Client, feed store.Collection[models.FeedItem]) *Dashboard {
	t.Helper()

	return NewDashboard(client,
		store.NewRemote[models.ProductionRecord](client, api.CollectionEggProduction),
		store.NewLocal(nil, func(o models.SalesOrder, id string) models.SalesOrder {
			o.ID = id
			return o
		}),
		feed,
		store.NewLocal(nil, func(tk models.Task, id string) models.Task {
			tk.ID = id
			return tk
		}),
		store.NewLocal(nil, func(r models.FinancialRecord, id string) models.FinancialRecord {
			r.ID = id
			return r
		}),
		"Rs.")
}

func TestDashboard_LoadFetchesFeed(t *testing.T) {
	client := newDashboardClient(t)
	feed := store.NewRemote[models.FeedItem](client, api.CollectionFeedInventory)
	dash := newDashboardFixture(t, client, feed)

	if err := dash.Load(context.Background()); err != nil {
		t.Fatalf("loading dashboard: %v", err)
	}

	// Seeded backend holds 250 + 80 kg of feed
	output := dash.Render(120, 40)
	if !strings.Contains(output, "330.0 kg") {
		t.Error("expected backend feed stock on the dashboard after load")
	}
	if !strings.Contains(output, "360") {
		t.Error("expected backend egg total on the dashboard after load")
	}
}

func TestDashboard_FeedFetchFailureDegrades(t *testing.T) {
	client := newDashboardClient(t)

	// Feed collection points at a dead backend; the rest is healthy
	deadSrv := httptest.NewServer(nil)
	deadSrv.Close()
	deadClient := api.NewClient(deadSrv.URL + "/api")
	feed := store.NewRemote[models.FeedItem](deadClient, api.CollectionFeedInventory)

	dash := newDashboardFixture(t, client, feed)
	if err := dash.Load(context.Background()); err != nil {
		t.Fatalf("expected partial failure to degrade, got %v", err)
	}

	output := dash.Render(120, 40)
	if !strings.Contains(output, "feed data unavailable") {
		t.Error("expected feed degradation notice")
	}
	if !strings.Contains(output, "0.0 kg") {
		t.Error("expected zero feed stock with no cached records")
	}
	if !strings.Contains(output, "360") {
		t.Error("expected production figures despite the feed failure")
	}
}
