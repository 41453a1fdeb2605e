package firefly

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	transactionsEndpoint = "/api/v1/transactions"

	// DefaultRecentLimit is used when a listing is requested without a limit.
	DefaultRecentLimit = 10
)

// CreateTransaction records one transaction. The source account name (and,
// for transfers, the destination name) is resolved against the ledger's
// asset accounts first, so the write issues at least two sequential
// requests. The write always uses today's UTC date, never a caller date.
//
// An unresolvable source fails with an *AccountNotFoundError that lists
// every available account name, at the cost of one extra listing request in
// the failure path. An unresolvable destination fails with a bare
// *DestinationNotFoundError; the asymmetry is intentional.
func (c *Client) CreateTransaction(ctx context.Context, input TransactionInput) (*TransactionResult, error) {
	source, err := c.FindAccountByName(ctx, input.Account)
	if err != nil {
		return nil, err
	}
	if source == nil {
		result, err := c.GetAccounts(ctx)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(result.Accounts))
		for _, acc := range result.Accounts {
			names = append(names, acc.Name)
		}
		return nil, &AccountNotFoundError{Name: input.Account, Available: names}
	}

	payload := transactionPayload{
		Type:        input.Type,
		Date:        time.Now().UTC().Format("2006-01-02"),
		Amount:      decimal.NewFromFloat(input.Amount).String(),
		Description: input.Description,
		SourceID:    source.ID,
	}

	// The ledger creates unknown categories on the fly, so the name is
	// attached without pre-validation.
	if input.Category != "" {
		payload.CategoryName = input.Category
	}

	if input.Type == TypeTransfer && input.DestinationAccount != "" {
		dest, err := c.FindAccountByName(ctx, input.DestinationAccount)
		if err != nil {
			return nil, err
		}
		if dest == nil {
			return nil, &DestinationNotFoundError{Name: input.DestinationAccount}
		}
		payload.DestinationID = dest.ID
	}

	batch := transactionBatch{Transactions: []transactionPayload{payload}}
	var resp transactionResponse
	if err := c.do(ctx, http.MethodPost, transactionsEndpoint, batch, nil, &resp); err != nil {
		return nil, err
	}

	return normalizeTransactionResult(resp.Data)
}

func normalizeTransactionResult(tx Transaction) (*TransactionResult, error) {
	if len(tx.Attributes.Transactions) == 0 {
		return nil, fmt.Errorf("ledger returned transaction %s without splits", tx.ID)
	}
	split := tx.Attributes.Transactions[0]
	return &TransactionResult{
		Success:     true,
		ID:          tx.ID,
		Type:        split.Type,
		Amount:      split.Amount,
		Currency:    split.CurrencySymbol,
		Description: split.Description,
		Date:        split.Date,
		Category:    nullableCategory(split.CategoryName),
	}, nil
}

// GetRecentTransactions lists the most recent transactions in the order the
// ledger returns them. A non-positive limit falls back to DefaultRecentLimit.
func (c *Client) GetRecentTransactions(ctx context.Context, limit int) ([]TransactionRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	endpoint := fmt.Sprintf("%s?limit=%d", transactionsEndpoint, limit)
	var resp transactionsResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}

	records := make([]TransactionRecord, 0, len(resp.Data))
	for _, tx := range resp.Data {
		records = append(records, normalizeTransactionRecord(tx))
	}
	return records, nil
}

func normalizeTransactionRecord(tx Transaction) TransactionRecord {
	if len(tx.Attributes.Transactions) == 0 {
		return TransactionRecord{ID: tx.ID}
	}
	split := tx.Attributes.Transactions[0]

	// The date may be absent; an empty string stands in rather than failing.
	date, _, _ := strings.Cut(split.Date, "T")

	return TransactionRecord{
		ID:          tx.ID,
		Date:        date,
		Type:        split.Type,
		Amount:      split.CurrencySymbol + split.Amount,
		Description: split.Description,
		Category:    nullableCategory(split.CategoryName),
		Source:      split.SourceName,
		Destination: split.DestinationName,
	}
}

// DeleteTransaction removes a transaction by id. Deleting an unknown id is
// not special-cased; it surfaces as whatever *APIError the ledger returns.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, transactionsEndpoint+"/"+id, nil, nil, nil)
}

func nullableCategory(name string) *string {
	if name == "" {
		return nil
	}
	return &name
}
