package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Review(ctx context.Context, isbn string) error
	Unreview(ctx context.Context, isbn string) error
	Reviews(ctx context.Context, isbn string) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bookshelf (%s) > ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: review <isbn>, unreview <isbn>, reviews <isbn>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, reviews <isbn>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "review", "unreview", "reviews":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <isbn>", cmd))
				continue
			}
			switch cmd {
			case "review":
				_ = a.Review(ctx, args[0])
			case "unreview":
				_ = a.Unreview(ctx, args[0])
			default:
				_ = a.Reviews(ctx, args[0])
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
