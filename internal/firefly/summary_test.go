package firefly

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGetMonthlySummary(t *testing.T) {
	var gotStart, gotEnd string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/summary/basic" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotStart = r.URL.Query().Get("start")
		gotEnd = r.URL.Query().Get("end")
		w.Write([]byte(`{
			"balance-in-USD": {"value": "123.45", "currency_code": "USD", "currency_symbol": "$"},
			"spent-in-USD": {"value": "-67.89", "currency_code": "USD", "currency_symbol": "$"}
		}`))
	}))

	got, err := client.GetMonthlySummary(context.Background())
	if err != nil {
		t.Fatalf("GetMonthlySummary failed: %v", err)
	}

	now := time.Now().UTC()
	wantStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	wantEnd := now.Format("2006-01-02")
	if gotStart != wantStart {
		t.Errorf("start = %q, want %q", gotStart, wantStart)
	}
	if gotEnd != wantEnd {
		t.Errorf("end = %q, want %q", gotEnd, wantEnd)
	}

	// The payload is a pass-through; every key survives.
	want := Summary{
		"balance-in-USD": {Value: "123.45", CurrencyCode: "USD", CurrencySymbol: "$"},
		"spent-in-USD":   {Value: "-67.89", CurrencyCode: "USD", CurrencySymbol: "$"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}
