// Command client is a small command-line client for the item API.
//
//	client -a localhost:8000 -u alice -p secret list Acme
//	client -u alice -p secret get 7
//	client -u alice -p secret create '{"Name":"Widget","Price":100,"Company":"Acme"}'
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/MKhiriev/item-api/internal/adapter"
	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/models"
	"github.com/caarlos0/env/v11"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUsage = errors.New("usage: client [flags] get <id> | list <company> [all] | create <json> | update <json> | delete <id>")

// clientConfig can be provided through the environment; flags override it.
type clientConfig struct {
	Address  string        `env:"ITEM_API_ADDRESS" envDefault:"localhost:8000"`
	Username string        `env:"ITEM_API_USERNAME"`
	Password string        `env:"ITEM_API_PASSWORD"`
	Timeout  time.Duration `env:"ITEM_API_TIMEOUT" envDefault:"15s"`
}

func main() {
	log := logger.NewLogger("item-client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, log *logger.Logger) error {
	cfg, err := env.ParseAs[clientConfig]()
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "item API address")
	fs.StringVar(&cfg.Username, "u", cfg.Username, "username")
	fs.StringVar(&cfg.Password, "p", cfg.Password, "password")
	fs.DurationVar(&cfg.Timeout, "t", cfg.Timeout, "request timeout")
	version := fs.Bool("version", false, "print build info")
	if err = fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if *version {
		_, err = fmt.Fprint(out, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		return errUsage
	}

	client, err := adapter.NewHTTPItemsClient(cfg.Address, cfg.Timeout, log)
	if err != nil {
		return err
	}

	if _, err = client.Login(ctx, models.Credential{Username: cfg.Username, Password: cfg.Password}); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	result, err := execute(ctx, client, rest[0], rest[1:])
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// execute runs one command. A nil result means there is nothing to print.
func execute(ctx context.Context, client adapter.ItemsClient, command string, args []string) (any, error) {
	switch command {
	case "get":
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", args[0], err)
		}
		return client.GetItem(ctx, id)
	case "list":
		all := len(args) > 1 && args[1] == "all"
		return client.ListItems(ctx, args[0], all)
	case "create":
		var item models.Item
		if err := json.Unmarshal([]byte(args[0]), &item); err != nil {
			return nil, fmt.Errorf("invalid item: %w", err)
		}
		return client.CreateItem(ctx, item)
	case "update":
		var item models.Item
		if err := json.Unmarshal([]byte(args[0]), &item); err != nil {
			return nil, fmt.Errorf("invalid item: %w", err)
		}
		return nil, client.UpdateItem(ctx, item)
	case "delete":
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", args[0], err)
		}
		return nil, client.DeleteItem(ctx, id)
	default:
		return nil, errUsage
	}
}
