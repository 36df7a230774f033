package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-puzzle-ledger/internal/client"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/logger"
)

const usage = `usage: miner [flags] <command> [args]

commands:
  mine                      mine until interrupted
  balance                   print the current balance
  transfer <user> <amount>  send coins to another account
  history                   print recent transactions

the password is read from MINER_PASSWORD

flags:
`

type options struct {
	server   string
	profile  string
	user     string
	delay    time.Duration
	logLevel string
	args     []string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Getenv("MINER_PASSWORD"), os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("miner", flag.ContinueOnError)
	fs.StringVar(&opts.server, "server", "http://localhost:8080", "Ledger server URL")
	fs.StringVar(&opts.profile, "profile", "miner.yaml", "Path to the saved profile")
	fs.StringVar(&opts.user, "user", "", "Username, overrides the saved profile")
	fs.DurationVar(&opts.delay, "delay", client.DefaultRetryDelay, "Pause after a failed mining round")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.args = fs.Args()
	if len(opts.args) == 0 {
		fs.Usage()
		return opts, errors.New("missing command")
	}
	return opts, nil
}

func run(ctx context.Context, opts options, password string, out io.Writer) error {
	if err := logger.Initialize(opts.logLevel); err != nil {
		return err
	}
	defer logger.Sync()

	if password == "" {
		return errors.New("MINER_PASSWORD is not set")
	}

	api := client.NewAPI(opts.server, nil)
	profiles := client.NewProfileStore(opts.profile)

	acc, err := signIn(ctx, api, profiles, opts.user, password)
	if err != nil {
		return err
	}

	switch cmd := opts.args[0]; cmd {
	case "mine":
		fmt.Fprintf(out, "Mining as %s\n", acc.Username)
		m := client.NewMiner(api, acc.UserID, password,
			client.WithRetryDelay(opts.delay),
			client.WithOnMined(func(res *client.MineResult) {
				fmt.Fprintf(out, "Mined %.4f | Balance: %.4f\n", res.Reward, res.Balance)
			}),
		)
		return m.Run(ctx)

	case "balance":
		fmt.Fprintf(out, "Balance: %.4f\n", acc.Balance)
		return nil

	case "transfer":
		if len(opts.args) != 3 {
			return errors.New("usage: transfer <user> <amount>")
		}
		amount, err := decimal.NewFromString(opts.args[2])
		if err != nil || !amount.IsPositive() {
			return fmt.Errorf("invalid amount %q", opts.args[2])
		}
		if err := api.Transfer(ctx, acc.UserID, password, opts.args[1], amount.String()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Sent %s to %s\n", amount.String(), opts.args[1])
		return nil

	case "history":
		txns, err := api.Transactions(ctx, acc.UserID, password)
		if err != nil {
			return err
		}
		for _, t := range txns {
			target := "-"
			if t.TargetID != nil {
				target = *t.TargetID
			}
			fmt.Fprintf(out, "%s  %-8s  %12.4f  %s\n", t.Timestamp.Format(time.RFC3339), t.Type, t.Amount, target)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// signIn logs in with the profile or -user name, registering the account when
// the server does not know it, and stores the result in the profile.
func signIn(ctx context.Context, api *client.API, profiles *client.ProfileStore, username, password string) (*client.Account, error) {
	if username == "" {
		p, err := profiles.Load()
		if errors.Is(err, client.ErrNoProfile) {
			return nil, fmt.Errorf("no profile at %s, pass -user", profiles.Path())
		}
		if err != nil {
			return nil, err
		}
		username = p.Username
	}

	acc, err := api.Login(ctx, username, password)
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		logger.Log.Infow("login failed, registering", "username", username)
		if _, err := api.Register(ctx, username, password); err != nil {
			return nil, fmt.Errorf("register: %w", err)
		}
		acc, err = api.Login(ctx, username, password)
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := profiles.Save(client.Profile{AccountID: acc.UserID, Username: acc.Username}); err != nil {
		return nil, err
	}
	return acc, nil
}
