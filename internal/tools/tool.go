// Package tools adapts the firefly client's operations into the descriptors
// a calling agent registers: name, description, parameter schema, and an
// executor producing text content blocks.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/lchavezpozo/firefly-plugin-openclaw/internal/firefly"
)

var validate = validator.New()

// Tool describes one agent-callable operation.
type Tool struct {
	Name        string
	Description string
	// Parameters is the JSON schema of the arguments object, as the host
	// expects to receive it.
	Parameters json.RawMessage
	Execute    func(ctx context.Context, client *firefly.Client, args json.RawMessage) (*Result, error)
}

// Result is the envelope handed back to the host.
type Result struct {
	Content []Content `json:"content"`
}

// Content is one block of a Result. Only text blocks are produced.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// All returns every tool in registration order.
func All() []Tool {
	return []Tool{
		accountsTool,
		transactionTool,
		recentTool,
		deleteTool,
		summaryTool,
		categoriesTool,
	}
}

// ByName finds a tool in the registry.
func ByName(name string) (Tool, bool) {
	for _, tool := range All() {
		if tool.Name == name {
			return tool, true
		}
	}
	return Tool{}, false
}

// textResult renders v as an indented JSON text block.
func textResult(v any) (*Result, error) {
	text, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return &Result{Content: []Content{{Type: "text", Text: string(text)}}}, nil
}

// textMessage wraps a plain user-visible message.
func textMessage(msg string) *Result {
	return &Result{Content: []Content{{Type: "text", Text: msg}}}
}
