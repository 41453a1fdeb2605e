package firefly

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const twoAccountsJSON = `{
	"data": [
		{"id": "1", "attributes": {"name": "Checking", "current_balance": "1000.50", "currency_symbol": "$"}},
		{"id": "2", "attributes": {"name": "Savings", "current_balance": "5000.00", "currency_symbol": "$"}}
	]
}`

func assetAccountsHandler(t *testing.T, body string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("type"); got != "asset" {
			t.Errorf("type query = %q, want %q", got, "asset")
		}
		w.Write([]byte(body))
	})
}

func TestGetAccounts(t *testing.T) {
	client := newTestClient(t, assetAccountsHandler(t, twoAccountsJSON))

	got, err := client.GetAccounts(context.Background())
	if err != nil {
		t.Fatalf("GetAccounts failed: %v", err)
	}

	want := &AccountsResult{
		Accounts: []AccountBalance{
			{Name: "Checking", Balance: 1000.5, Currency: "$"},
			{Name: "Savings", Balance: 5000, Currency: "$"},
		},
		Total:    6000.5,
		Currency: "$",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetAccounts mismatch (-want +got):\n%s", diff)
	}
}

func TestGetAccounts_Empty(t *testing.T) {
	client := newTestClient(t, assetAccountsHandler(t, `{"data":[]}`))

	got, err := client.GetAccounts(context.Background())
	if err != nil {
		t.Fatalf("GetAccounts failed: %v", err)
	}

	want := &AccountsResult{Accounts: []AccountBalance{}, Total: 0, Currency: "$"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetAccounts mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeAccounts_UnparseableBalance(t *testing.T) {
	got := normalizeAccounts([]Account{
		{ID: "1", Attributes: AccountAttributes{Name: "Broken", CurrentBalance: "n/a", CurrencySymbol: "€"}},
		{ID: "2", Attributes: AccountAttributes{Name: "Fine", CurrentBalance: "10.25", CurrencySymbol: "€"}},
	})

	if got.Total != 10.25 {
		t.Errorf("Total = %v, want 10.25", got.Total)
	}
	if got.Accounts[0].Balance != 0 {
		t.Errorf("broken balance = %v, want 0", got.Accounts[0].Balance)
	}
	if got.Currency != "€" {
		t.Errorf("Currency = %q, want €", got.Currency)
	}
}

func TestFindAccountByName(t *testing.T) {
	client := newTestClient(t, assetAccountsHandler(t, twoAccountsJSON))

	tests := []struct {
		name   string
		lookup string
		wantID string
	}{
		{name: "exact match", lookup: "Checking", wantID: "1"},
		{name: "case insensitive", lookup: "sAvInGs", wantID: "2"},
		{name: "no partial match", lookup: "Check", wantID: ""},
		{name: "unknown", lookup: "Brokerage", wantID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, err := client.FindAccountByName(context.Background(), tt.lookup)
			if err != nil {
				t.Fatalf("FindAccountByName failed: %v", err)
			}
			if tt.wantID == "" {
				if acc != nil {
					t.Errorf("expected no match, got %+v", acc)
				}
				return
			}
			if acc == nil || acc.ID != tt.wantID {
				t.Errorf("got %+v, want account id %q", acc, tt.wantID)
			}
		})
	}
}
