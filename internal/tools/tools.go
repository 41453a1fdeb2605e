package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lchavezpozo/firefly-plugin-openclaw/internal/firefly"
)

var accountsTool = Tool{
	Name:        "firefly_accounts",
	Description: "Get all asset account balances from Firefly III. Use when user asks about their money, balances, or 'cuánto tengo'.",
	Parameters: json.RawMessage(`{
		"type": "object",
		"properties": {},
		"required": []
	}`),
	Execute: func(ctx context.Context, client *firefly.Client, _ json.RawMessage) (*Result, error) {
		result, err := client.GetAccounts(ctx)
		if err != nil {
			return nil, err
		}
		return textResult(result)
	},
}

var transactionTool = Tool{
	Name:        "firefly_transaction",
	Description: "Record a new transaction (expense, income, or transfer) in Firefly III. Use for 'gasté', 'pagué', 'compré', 'recibí', 'transferí'.",
	Parameters: json.RawMessage(`{
		"type": "object",
		"properties": {
			"type": {
				"type": "string",
				"enum": ["withdrawal", "deposit", "transfer"],
				"description": "Transaction type: withdrawal (expense), deposit (income), transfer"
			},
			"amount": {
				"type": "number",
				"description": "Transaction amount (positive number)"
			},
			"description": {
				"type": "string",
				"description": "What was this transaction for"
			},
			"account": {
				"type": "string",
				"description": "Source account name (e.g., 'Checking', 'Savings')"
			},
			"category": {
				"type": "string",
				"description": "Optional category (e.g., 'Food', 'Transport')"
			},
			"destination_account": {
				"type": "string",
				"description": "Destination account (required for transfers)"
			}
		},
		"required": ["type", "amount", "description", "account"]
	}`),
	Execute: func(ctx context.Context, client *firefly.Client, args json.RawMessage) (*Result, error) {
		var input firefly.TransactionInput
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, fmt.Errorf("decode transaction arguments: %w", err)
		}
		if err := validate.Struct(input); err != nil {
			return nil, fmt.Errorf("invalid transaction arguments: %w", err)
		}

		result, err := client.CreateTransaction(ctx, input)
		if err != nil {
			// Any failure inside the write flow, resolution or remote, becomes
			// a user-visible message; the host never sees a raw fault here.
			return textMessage("Error: " + err.Error()), nil
		}
		return textResult(result)
	},
}

var recentTool = Tool{
	Name:        "firefly_recent",
	Description: "Get recent transactions from Firefly III. Use for 'últimos gastos', 'transacciones recientes', 'en qué gasté'.",
	Parameters: json.RawMessage(`{
		"type": "object",
		"properties": {
			"limit": {
				"type": "number",
				"description": "Number of transactions to return (default 10)"
			}
		},
		"required": []
	}`),
	Execute: func(ctx context.Context, client *firefly.Client, args json.RawMessage) (*Result, error) {
		var params struct {
			Limit int `json:"limit"`
		}
		if len(args) > 0 {
			if err := json.Unmarshal(args, &params); err != nil {
				return nil, fmt.Errorf("decode recent arguments: %w", err)
			}
		}

		records, err := client.GetRecentTransactions(ctx, params.Limit)
		if err != nil {
			return nil, err
		}
		return textResult(records)
	},
}

var deleteTool = Tool{
	Name:        "firefly_delete",
	Description: "Delete a transaction from Firefly III by its ID.",
	Parameters: json.RawMessage(`{
		"type": "object",
		"properties": {
			"transaction_id": {
				"type": "string",
				"description": "The transaction ID to delete"
			}
		},
		"required": ["transaction_id"]
	}`),
	Execute: func(ctx context.Context, client *firefly.Client, args json.RawMessage) (*Result, error) {
		var params struct {
			TransactionID string `json:"transaction_id" validate:"required"`
		}
		if err := json.Unmarshal(args, &params); err != nil {
			return nil, fmt.Errorf("decode delete arguments: %w", err)
		}
		if err := validate.Struct(params); err != nil {
			return nil, fmt.Errorf("invalid delete arguments: %w", err)
		}

		if err := client.DeleteTransaction(ctx, params.TransactionID); err != nil {
			return nil, err
		}
		// A one-line acknowledgement; no indentation for this envelope.
		text, err := json.Marshal(map[string]any{"success": true, "deleted": params.TransactionID})
		if err != nil {
			return nil, fmt.Errorf("encode tool result: %w", err)
		}
		return textMessage(string(text)), nil
	},
}

var summaryTool = Tool{
	Name:        "firefly_summary",
	Description: "Get a financial summary for the current month from Firefly III. Use for 'resumen del mes', 'cuánto gasté este mes'.",
	Parameters: json.RawMessage(`{
		"type": "object",
		"properties": {},
		"required": []
	}`),
	Execute: func(ctx context.Context, client *firefly.Client, _ json.RawMessage) (*Result, error) {
		summary, err := client.GetMonthlySummary(ctx)
		if err != nil {
			return nil, err
		}
		return textResult(summary)
	},
}

var categoriesTool = Tool{
	Name:        "firefly_categories",
	Description: "List all spending categories from Firefly III.",
	Parameters: json.RawMessage(`{
		"type": "object",
		"properties": {},
		"required": []
	}`),
	Execute: func(ctx context.Context, client *firefly.Client, _ json.RawMessage) (*Result, error) {
		categories, err := client.GetCategories(ctx)
		if err != nil {
			return nil, err
		}
		return textResult(categories)
	},
}
