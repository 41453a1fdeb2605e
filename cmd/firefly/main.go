package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/lchavezpozo/firefly-plugin-openclaw/internal/firefly"
	"github.com/lchavezpozo/firefly-plugin-openclaw/internal/logger"
	"github.com/lchavezpozo/firefly-plugin-openclaw/internal/tools"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "accounts":
		runAccounts(log)
	case "tx":
		runTransaction(log)
	case "recent":
		runRecent(log)
	case "delete":
		runDelete(log)
	case "summary":
		runSummary(log)
	case "categories":
		runCategories(log)
	case "tools":
		printTools()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Firefly III CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  firefly <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  accounts    List asset account balances")
	fmt.Println("  tx          Record a transaction (expense, income, or transfer)")
	fmt.Println("  recent      List recent transactions")
	fmt.Println("  delete      Delete a transaction by ID")
	fmt.Println("  summary     Show the current month's summary")
	fmt.Println("  categories  List spending categories")
	fmt.Println("  tools       Print the tool registry (names and schemas)")
	fmt.Println("  help        Show this help message")
	fmt.Println("\nConnection options (every command):")
	fmt.Println("  -url, -token           Direct credentials (or FIREFLY_URL, FIREFLY_TOKEN)")
	fmt.Println("  -credentials           JSON credentials file, supports ~/ (or FIREFLY_CREDENTIALS_FILE)")
	fmt.Println("  -timeout               Overall deadline per invocation (default 2m)")
	fmt.Println("\nRun 'firefly <command> -h' for more information on a command.")
}

func printTools() {
	for _, tool := range tools.All() {
		fmt.Printf("%s\n  %s\n  parameters: %s\n\n", tool.Name, tool.Description, tool.Parameters)
	}
}

// connFlags are the connection options shared by every command.
type connFlags struct {
	url         string
	token       string
	credentials string
	timeout     time.Duration
}

func addConnFlags(fs *flag.FlagSet) *connFlags {
	cf := &connFlags{}
	fs.StringVar(&cf.url, "url", os.Getenv("FIREFLY_URL"), "Firefly III base URL")
	fs.StringVar(&cf.token, "token", os.Getenv("FIREFLY_TOKEN"), "Personal access token")
	fs.StringVar(&cf.credentials, "credentials", os.Getenv("FIREFLY_CREDENTIALS_FILE"), "Path to a JSON credentials file")
	fs.DurationVar(&cf.timeout, "timeout", 2*time.Minute, "Overall deadline for this invocation")
	return cf
}

// execute runs one tool against a freshly constructed client and prints its
// text content to stdout.
func execute(log zerolog.Logger, cf *connFlags, toolName string, args json.RawMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), cf.timeout)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	client, err := firefly.New(firefly.Config{
		URL:             cf.url,
		Token:           cf.token,
		CredentialsPath: cf.credentials,
	}, firefly.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("Client configuration failed")
	}

	tool, ok := tools.ByName(toolName)
	if !ok {
		log.Fatal().Str("tool", toolName).Msg("Unknown tool")
	}

	result, err := tool.Execute(ctx, client, args)
	if err != nil {
		log.Fatal().Err(err).Str("tool", toolName).Msg("Tool execution failed")
	}

	for _, block := range result.Content {
		fmt.Println(block.Text)
	}
}

func runAccounts(log zerolog.Logger) {
	fs := flag.NewFlagSet("accounts", flag.ExitOnError)
	cf := addConnFlags(fs)
	fs.Parse(os.Args[2:])

	execute(log, cf, "firefly_accounts", nil)
}

func runTransaction(log zerolog.Logger) {
	fs := flag.NewFlagSet("tx", flag.ExitOnError)
	cf := addConnFlags(fs)
	txType := fs.String("type", "withdrawal", "Transaction type: withdrawal, deposit, or transfer")
	amount := fs.Float64("amount", 0, "Transaction amount (required)")
	description := fs.String("description", "", "What the transaction was for (required)")
	account := fs.String("account", "", "Source account name (required)")
	category := fs.String("category", "", "Optional category name")
	destination := fs.String("destination", "", "Destination account (transfers)")
	fs.Parse(os.Args[2:])

	if *amount <= 0 || *description == "" || *account == "" {
		log.Fatal().Msg("Error: -amount, -description and -account are required")
	}

	args, err := json.Marshal(firefly.TransactionInput{
		Type:               *txType,
		Amount:             *amount,
		Description:        *description,
		Account:            *account,
		Category:           *category,
		DestinationAccount: *destination,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Error encoding transaction arguments")
	}

	execute(log, cf, "firefly_transaction", args)
}

func runRecent(log zerolog.Logger) {
	fs := flag.NewFlagSet("recent", flag.ExitOnError)
	cf := addConnFlags(fs)
	limit := fs.Int("limit", firefly.DefaultRecentLimit, "Number of transactions to return")
	fs.Parse(os.Args[2:])

	args, err := json.Marshal(map[string]int{"limit": *limit})
	if err != nil {
		log.Fatal().Err(err).Msg("Error encoding recent arguments")
	}

	execute(log, cf, "firefly_recent", args)
}

func runDelete(log zerolog.Logger) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	cf := addConnFlags(fs)
	id := fs.String("id", "", "Transaction ID to delete (required)")
	fs.Parse(os.Args[2:])

	if *id == "" {
		log.Fatal().Msg("Error: -id is required")
	}

	args, err := json.Marshal(map[string]string{"transaction_id": *id})
	if err != nil {
		log.Fatal().Err(err).Msg("Error encoding delete arguments")
	}

	execute(log, cf, "firefly_delete", args)
}

func runSummary(log zerolog.Logger) {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	cf := addConnFlags(fs)
	fs.Parse(os.Args[2:])

	execute(log, cf, "firefly_summary", nil)
}

func runCategories(log zerolog.Logger) {
	fs := flag.NewFlagSet("categories", flag.ExitOnError)
	cf := addConnFlags(fs)
	fs.Parse(os.Args[2:])

	execute(log, cf, "firefly_categories", nil)
}
