package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error

	Products(ctx context.Context, query string) error
	Add(ctx context.Context, id string) error
	Fave(ctx context.Context, id string) error

	Cart(ctx context.Context) error
	Remove(ctx context.Context, id string) error
	Qty(ctx context.Context, id string, delta int) error
	ClearCart(ctx context.Context) error
	FaveAdd(ctx context.Context, id string) error
	Checkout(ctx context.Context) error

	Profile(ctx context.Context) error
	SetField(ctx context.Context, field, value string) error
	SetImage(ctx context.Context, slot, path string) error

	Support(ctx context.Context) error
}

const (
	helpGuest = "Available commands: register, login, products, search <q>, add <id>, fave <id>, " +
		"cart, remove <id>, qty <id> <delta>, clear, fave-add <id>, checkout, support, exit"
	helpUser = "Available commands: products, search <q>, add <id>, fave <id>, " +
		"cart, remove <id>, qty <id> <delta>, clear, fave-add <id>, checkout, " +
		"profile, set <name|phone|city> <value>, avatar <path>, cover <path>, " +
		"support, logout, delete-account, exit"
)

// runREPL starts a simple read–eval–print loop for the storefront.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on a. Commands that need an argument print their
// usage when it is missing. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ynitaziki %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "delete-account":
			_ = a.DeleteAccount(ctx)

		case "products":
			_ = a.Products(ctx, "")
		case "search":
			_ = a.Products(ctx, strings.Join(args, " "))
		case "add":
			if withID(cmd, args) {
				_ = a.Add(ctx, args[0])
			}
		case "fave":
			if withID(cmd, args) {
				_ = a.Fave(ctx, args[0])
			}

		case "cart":
			_ = a.Cart(ctx)
		case "remove":
			if withID(cmd, args) {
				_ = a.Remove(ctx, args[0])
			}
		case "qty":
			if len(args) != 2 {
				printlnFn("Usage: qty <id> <delta>")
				continue
			}
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				printlnFn("Usage: qty <id> <delta>")
				continue
			}
			_ = a.Qty(ctx, args[0], delta)
		case "clear":
			_ = a.ClearCart(ctx)
		case "fave-add":
			if withID(cmd, args) {
				_ = a.FaveAdd(ctx, args[0])
			}
		case "checkout":
			_ = a.Checkout(ctx)

		case "profile":
			_ = a.Profile(ctx)
		case "set":
			if len(args) < 1 {
				printlnFn("Usage: set <name|phone|city> <value>")
				continue
			}
			_ = a.SetField(ctx, args[0], strings.Join(args[1:], " "))
		case "avatar", "cover":
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <path>", cmd))
				continue
			}
			_ = a.SetImage(ctx, cmd, args[0])

		case "support":
			_ = a.Support(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func withID(cmd string, args []string) bool {
	if len(args) != 1 {
		printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
		return false
	}
	return true
}
