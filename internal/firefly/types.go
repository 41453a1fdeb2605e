package firefly

// Remote shapes. Firefly III wraps resources in a {"data": ...} envelope with
// an opaque string id and an attributes object; only the fields this client
// reads are modelled, everything else the remote sends is ignored on decode.

type accountsResponse struct {
	Data []Account `json:"data"`
}

// Account is an asset account as the ledger returns it. Accounts are
// read-only here; they are resolved, never created or mutated.
type Account struct {
	ID         string            `json:"id"`
	Attributes AccountAttributes `json:"attributes"`
}

type AccountAttributes struct {
	Name           string `json:"name"`
	CurrentBalance string `json:"current_balance"`
	CurrencySymbol string `json:"currency_symbol"`
	CurrencyCode   string `json:"currency_code"`
	Type           string `json:"type"`
	Active         bool   `json:"active"`
}

type transactionsResponse struct {
	Data []Transaction `json:"data"`
}

// The transaction write returns a single object, not a list.
type transactionResponse struct {
	Data Transaction `json:"data"`
}

// Transaction is a transaction group; the actual money movements are the
// splits under Attributes.Transactions. This client only ever reads the
// first split.
type Transaction struct {
	ID         string                `json:"id"`
	Attributes TransactionAttributes `json:"attributes"`
}

type TransactionAttributes struct {
	Transactions []TransactionSplit `json:"transactions"`
}

type TransactionSplit struct {
	Type            string `json:"type"`
	Date            string `json:"date"`
	Amount          string `json:"amount"`
	CurrencySymbol  string `json:"currency_symbol"`
	CurrencyCode    string `json:"currency_code"`
	Description     string `json:"description"`
	SourceID        string `json:"source_id"`
	SourceName      string `json:"source_name"`
	DestinationID   string `json:"destination_id"`
	DestinationName string `json:"destination_name"`
	CategoryID      string `json:"category_id,omitempty"`
	CategoryName    string `json:"category_name,omitempty"`
}

type categoriesResponse struct {
	Data []Category `json:"data"`
}

type Category struct {
	ID         string             `json:"id"`
	Attributes CategoryAttributes `json:"attributes"`
}

type CategoryAttributes struct {
	Name   string          `json:"name"`
	Spent  []CurrencyTotal `json:"spent,omitempty"`
	Earned []CurrencyTotal `json:"earned,omitempty"`
}

// CurrencyTotal is one entry of the per-currency spent/earned breakdown.
type CurrencyTotal struct {
	Sum            string `json:"sum"`
	CurrencySymbol string `json:"currency_symbol"`
}

// Summary is the raw summary/basic payload, keyed by entry id (for example
// "balance-in-USD"). It is forwarded to the caller without reshaping.
type Summary map[string]SummaryEntry

type SummaryEntry struct {
	Value          string `json:"value"`
	CurrencyCode   string `json:"currency_code"`
	CurrencySymbol string `json:"currency_symbol"`
}

// transactionPayload is the write shape for one transaction split.
type transactionPayload struct {
	Type          string `json:"type"`
	Date          string `json:"date"`
	Amount        string `json:"amount"`
	Description   string `json:"description"`
	SourceID      string `json:"source_id"`
	CategoryName  string `json:"category_name,omitempty"`
	DestinationID string `json:"destination_id,omitempty"`
}

// The ledger accepts transactions only as a batch, even for a single one.
type transactionBatch struct {
	Transactions []transactionPayload `json:"transactions"`
}

// Normalized output shapes. These are the stable results handed to the tool
// layer; remote fields not represented here are deliberately dropped.

// AccountBalance is one asset-account balance.
type AccountBalance struct {
	Name     string  `json:"name"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// AccountsResult lists every asset-account balance plus their total.
// Currency is the first account's symbol, or "$" for an empty ledger.
type AccountsResult struct {
	Accounts []AccountBalance `json:"accounts"`
	Total    float64          `json:"total"`
	Currency string           `json:"currency"`
}

// Transaction types accepted by CreateTransaction.
const (
	TypeWithdrawal = "withdrawal"
	TypeDeposit    = "deposit"
	TypeTransfer   = "transfer"
)

// TransactionInput describes a transaction to record. Account names are
// resolved against the ledger's asset accounts at submission time; the
// category name is passed through and created remotely if unknown.
type TransactionInput struct {
	Type               string  `json:"type" validate:"required,oneof=withdrawal deposit transfer"`
	Amount             float64 `json:"amount" validate:"required,gt=0"`
	Description        string  `json:"description" validate:"required"`
	Account            string  `json:"account" validate:"required"`
	Category           string  `json:"category,omitempty"`
	DestinationAccount string  `json:"destination_account,omitempty"`
}

// TransactionResult is the normalized outcome of a successful write.
type TransactionResult struct {
	Success     bool    `json:"success"`
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      string  `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Category    *string `json:"category"`
}

// TransactionRecord is one normalized entry of a transaction listing.
// Amount is the currency symbol concatenated with the raw magnitude.
type TransactionRecord struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Amount      string  `json:"amount"`
	Description string  `json:"description"`
	Category    *string `json:"category"`
	Source      string  `json:"source,omitempty"`
	Destination string  `json:"destination,omitempty"`
}

// CategoryInfo is one normalized category. Spent and Earned come from the
// first entry of the remote per-currency breakdown, or are null without one.
type CategoryInfo struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Spent  *string `json:"spent"`
	Earned *string `json:"earned"`
}
