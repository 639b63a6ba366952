package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Paprikas/double-double/internal/adapter/http/dto"
	"github.com/Paprikas/double-double/internal/domain"
	"github.com/Paprikas/double-double/tests/testutil"
)

func TestEntryCreation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	cash := testDB.CreateTestAccount(ctx, "Cash", "1000", domain.Asset, false)
	revenue := testDB.CreateTestAccount(ctx, "Sales Revenue", "4000", domain.Revenue, false)

	t.Run("create balanced entry", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/entries", dto.CreateEntryRequest{
			Description: "cash sale",
			EntryType:   "sale",
			Debits: []dto.AmountRequest{
				{Account: "Cash", Amount: decimal.NewFromInt(100)},
			},
			Credits: []dto.AmountRequest{
				{Account: "4000", Amount: decimal.NewFromInt(100)},
			},
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		var resp dto.EntryResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.Description != "cash sale" {
			t.Errorf("expected description %q, got %q", "cash sale", resp.Description)
		}
		if resp.EntryType != "sale" {
			t.Errorf("expected entry type sale, got %q", resp.EntryType)
		}
		if len(resp.Debits) != 1 || len(resp.Credits) != 1 {
			t.Fatalf("expected 1 debit and 1 credit, got %d/%d", len(resp.Debits), len(resp.Credits))
		}
		if resp.Debits[0].AccountID != cash.ID {
			t.Errorf("expected debit to cash account, got %q", resp.Debits[0].AccountID)
		}
		if resp.Credits[0].AccountID != revenue.ID {
			t.Errorf("expected credit to revenue account, got %q", resp.Credits[0].AccountID)
		}
	})

	t.Run("unbalanced entry is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/entries", dto.CreateEntryRequest{
			Description: "does not balance",
			Debits: []dto.AmountRequest{
				{Account: "Cash", Amount: decimal.NewFromInt(100)},
			},
			Credits: []dto.AmountRequest{
				{Account: "4000", Amount: decimal.NewFromInt(90)},
			},
		})

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d: %s", http.StatusBadRequest, w.Code, w.Body.String())
		}
	})

	t.Run("unknown account is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/entries", dto.CreateEntryRequest{
			Description: "unknown account",
			Debits: []dto.AmountRequest{
				{Account: "Nonsense", Amount: decimal.NewFromInt(10)},
			},
			Credits: []dto.AmountRequest{
				{Account: "4000", Amount: decimal.NewFromInt(10)},
			},
		})

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d: %s", http.StatusNotFound, w.Code, w.Body.String())
		}
	})

	t.Run("reversed entry swaps debit and credit lists", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/entries", dto.CreateEntryRequest{
			Description: "refund",
			Reversed:    true,
			Debits: []dto.AmountRequest{
				{Account: "Cash", Amount: decimal.NewFromInt(25)},
			},
			Credits: []dto.AmountRequest{
				{Account: "4000", Amount: decimal.NewFromInt(25)},
			},
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		var resp dto.EntryResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.Debits[0].AccountID != revenue.ID {
			t.Errorf("expected reversed debit to revenue account, got %q", resp.Debits[0].AccountID)
		}
		if resp.Credits[0].AccountID != cash.ID {
			t.Errorf("expected reversed credit to cash account, got %q", resp.Credits[0].AccountID)
		}
	})

	t.Run("entry with contextual tags round-trips", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/entries", dto.CreateEntryRequest{
			Description: "order payment",
			EntryType:   "payment",
			Initiator:   &dto.ReferenceRequest{Type: "User", ID: "u-1"},
			Debits: []dto.AmountRequest{
				{
					Account:   "Cash",
					Amount:    decimal.NewFromInt(50),
					Accountee: &dto.ReferenceRequest{Type: "Customer", ID: "c-1"},
					Context:   &dto.ReferenceRequest{Type: "Order", ID: "o-1"},
				},
			},
			Credits: []dto.AmountRequest{
				{Account: "4000", Amount: decimal.NewFromInt(50)},
			},
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		var resp dto.EntryResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.Initiator == nil || resp.Initiator.ID != "u-1" {
			t.Errorf("expected initiator u-1, got %+v", resp.Initiator)
		}
		debit := resp.Debits[0]
		if debit.Accountee == nil || debit.Accountee.ID != "c-1" {
			t.Errorf("expected accountee c-1, got %+v", debit.Accountee)
		}
		if debit.Context == nil || debit.Context.Type != "Order" {
			t.Errorf("expected order context, got %+v", debit.Context)
		}

		// Re-fetch and verify persistence.
		w = doJSON(t, router, http.MethodGet, "/api/v1/entries/"+resp.ID, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		var fetched dto.EntryResponse
		if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if fetched.ID != resp.ID {
			t.Errorf("expected entry %q, got %q", resp.ID, fetched.ID)
		}
		if fetched.Debits[0].Accountee == nil || fetched.Debits[0].Accountee.ID != "c-1" {
			t.Errorf("expected persisted accountee c-1, got %+v", fetched.Debits[0].Accountee)
		}
	})

	t.Run("list entries by account", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/accounts/"+cash.ID+"/entries", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		var resp dto.ListEntriesResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if len(resp.Entries) == 0 {
			t.Error("expected entries touching the cash account")
		}
	})

	t.Run("idempotent create replays first response", func(t *testing.T) {
		req := dto.CreateEntryRequest{
			Description: "replayed",
			Debits: []dto.AmountRequest{
				{Account: "Cash", Amount: decimal.NewFromInt(5)},
			},
			Credits: []dto.AmountRequest{
				{Account: "4000", Amount: decimal.NewFromInt(5)},
			},
		}

		key := testutil.GenerateID()
		first := doJSONWithKey(t, router, req, key)
		second := doJSONWithKey(t, router, req, key)

		if first.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, first.Code, first.Body.String())
		}
		if second.Header().Get("X-Idempotency-Replay") != "true" {
			t.Error("expected replay header on second request")
		}
		if first.Body.String() != second.Body.String() {
			t.Error("expected identical responses for the same idempotency key")
		}
	})
}
