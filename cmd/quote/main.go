package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"usdbrl-service/internal/application"
	"usdbrl-service/internal/bootstrap"
	"usdbrl-service/internal/domain"
	"usdbrl-service/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

const usage = `usage:
  quote rate             print the current USD/BRL rate
  quote convert <usd>    convert a USD amount to BRL`

// exit codes
const (
	exitOK          = 0
	exitUnavailable = 1
	exitUsage       = 2
	exitInit        = 3
)

func main() {
	logger := logx.L()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := bootstrap.Init(ctx)
	if err != nil {
		logger.Error("bootstrap", zap.Error(err))
		os.Exit(exitInit)
	}
	code := run(ctx, svc, os.Args[1:], os.Stdout, os.Stderr)
	cleanup()
	os.Exit(code)
}

type quoter interface {
	GetUsdBrlRate(ctx context.Context) (domain.Rate, error)
	ConvertUsdToBrl(ctx context.Context, amountUSD decimal.Decimal) (decimal.Decimal, error)
}

var _ quoter = (*application.QuoteService)(nil)

func run(ctx context.Context, q quoter, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}
	switch args[0] {
	case "rate":
		rate, err := q.GetUsdBrlRate(ctx)
		if err != nil {
			return fail(stderr, err)
		}
		fmt.Fprintln(stdout, rate.String())
		return exitOK
	case "convert":
		if len(args) != 2 {
			fmt.Fprintln(stderr, usage)
			return exitUsage
		}
		amount, err := decimal.NewFromString(args[1])
		if err != nil {
			fmt.Fprintf(stderr, "invalid amount %q\n", args[1])
			return exitUsage
		}
		brl, err := q.ConvertUsdToBrl(ctx, amount)
		if err != nil {
			return fail(stderr, err)
		}
		fmt.Fprintln(stdout, brl.String())
		return exitOK
	default:
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}
}

func fail(stderr io.Writer, err error) int {
	if errors.Is(err, domain.ErrQuotationUnavailable) {
		fmt.Fprintln(stderr, "quotation unavailable, try again later")
		return exitUnavailable
	}
	fmt.Fprintln(stderr, err)
	return exitUnavailable
}
