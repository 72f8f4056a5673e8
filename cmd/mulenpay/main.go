// Command mulenpay is a thin CLI over the SDK: one API call per invocation,
// raw JSON response on stdout. Credentials come from the environment or a
// .env file (MULENPAY_API_KEY, MULENPAY_SECRET_KEY).
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	mulenpay "github.com/mulenpay/mulenpay-go"
	"github.com/mulenpay/mulenpay-go/pkg/config"
	"github.com/mulenpay/mulenpay-go/pkg/logger"
)

const usage = `usage: mulenpay <command> [flags]

commands:
  create         create a payment
  list           list payments
  get            get a payment by id
  confirm        capture a held payment
  cancel         release a held payment
  refund         refund a payment
  receipt        fetch a payment receipt
  subscriptions  list subscriptions
  unsubscribe    cancel a subscription
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	client, err := mulenpay.NewClient(cfg.MulenPay)
	panicOnErr("create client", err)

	ctx := logger.WithRequestID(context.Background(), logger.NewRequestID())

	resp, err := run(ctx, client, os.Args[1], os.Args[2:])
	panicOnErr(os.Args[1], err)

	printJSON(resp)
}

func run(ctx context.Context, client *mulenpay.Client, command string, args []string) (json.RawMessage, error) {
	switch command {
	case "create":
		return runCreate(ctx, client, args)
	case "list":
		page := pageFlag(command, args)
		return client.Payments(ctx, page)
	case "get":
		id := idFlag(command, args)
		return client.Payment(ctx, id)
	case "confirm":
		id := idFlag(command, args)
		return client.ConfirmPayment(ctx, id)
	case "cancel":
		id := idFlag(command, args)
		return client.CancelPayment(ctx, id)
	case "refund":
		id := idFlag(command, args)
		return client.RefundPayment(ctx, id)
	case "receipt":
		id := idFlag(command, args)
		return client.Receipt(ctx, id)
	case "subscriptions":
		page := pageFlag(command, args)
		return client.Subscriptions(ctx, page)
	case "unsubscribe":
		id := idFlag(command, args)
		return client.CancelSubscription(ctx, id)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
		return nil, nil
	}
}

func runCreate(ctx context.Context, client *mulenpay.Client, args []string) (json.RawMessage, error) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	amount := fs.String("amount", "", "payment amount, e.g. 1000.50")
	invoiceUUID := fs.String("uuid", "", "invoice uuid (generated when empty)")
	shopID := fs.Int64("shop-id", 0, "shop id")
	description := fs.String("description", "", "payment description")
	subscribe := fs.String("subscribe", "", "subscription period: Day, Week or Month")
	holdTime := fs.Int64("hold-time", 0, "hold time in seconds")
	parseFlags(fs, args)

	if *invoiceUUID == "" {
		*invoiceUUID = uuid.Must(uuid.NewV4()).String()
	}

	d, err := decimal.NewFromString(*amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}

	p := mulenpay.CreatePaymentRequest{
		Currency:    mulenpay.CurrencyRUB,
		Amount:      mulenpay.FormatAmount(d),
		UUID:        *invoiceUUID,
		ShopID:      *shopID,
		Description: *description,
	}

	if *subscribe != "" {
		period := mulenpay.SubscribePeriod(*subscribe)
		p.Subscribe = &period
	}

	if *holdTime != 0 {
		p.HoldTime = holdTime
	}

	return client.CreatePayment(ctx, p)
}

func pageFlag(command string, args []string) int {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	parseFlags(fs, args)

	return *page
}

func idFlag(command string, args []string) int64 {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	id := fs.Int64("id", 0, "remote id")
	parseFlags(fs, args)

	return *id
}

func parseFlags(fs *flag.FlagSet, args []string) {
	err := fs.Parse(args)
	panicOnErr("parse flags", err)
}

func printJSON(raw json.RawMessage) {
	var buf bytes.Buffer

	err := json.Indent(&buf, raw, "", "  ")
	if err != nil {
		fmt.Println(string(raw))
		return
	}

	fmt.Println(buf.String())
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
