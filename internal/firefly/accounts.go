package firefly

import (
	"context"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

const assetAccountsEndpoint = "/api/v1/accounts?type=asset"

// ListAssetAccounts fetches every asset account. Results are never cached;
// every call is one listing request.
func (c *Client) ListAssetAccounts(ctx context.Context) ([]Account, error) {
	var resp accountsResponse
	if err := c.do(ctx, http.MethodGet, assetAccountsEndpoint, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// FindAccountByName looks up an asset account by case-insensitive exact name
// match. A nil account with a nil error means nothing matched; callers decide
// whether absence is fatal.
func (c *Client) FindAccountByName(ctx context.Context, name string) (*Account, error) {
	accounts, err := c.ListAssetAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if strings.EqualFold(accounts[i].Attributes.Name, name) {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

// GetAccounts returns every asset-account balance plus their total.
func (c *Client) GetAccounts(ctx context.Context) (*AccountsResult, error) {
	remote, err := c.ListAssetAccounts(ctx)
	if err != nil {
		return nil, err
	}
	return normalizeAccounts(remote), nil
}

func normalizeAccounts(remote []Account) *AccountsResult {
	accounts := make([]AccountBalance, 0, len(remote))
	total := decimal.Zero
	for _, acc := range remote {
		// Unparseable balances count as zero rather than poisoning the total.
		balance, err := decimal.NewFromString(acc.Attributes.CurrentBalance)
		if err != nil {
			balance = decimal.Zero
		}
		total = total.Add(balance)
		accounts = append(accounts, AccountBalance{
			Name:     acc.Attributes.Name,
			Balance:  balance.InexactFloat64(),
			Currency: acc.Attributes.CurrencySymbol,
		})
	}

	// "$" is a documented fallback for an empty ledger, not a discovered
	// currency.
	currency := "$"
	if len(accounts) > 0 && accounts[0].Currency != "" {
		currency = accounts[0].Currency
	}

	return &AccountsResult{
		Accounts: accounts,
		Total:    total.InexactFloat64(),
		Currency: currency,
	}
}
