package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	Login(ctx context.Context) error
	Info(ctx context.Context) error
	Logbooks(ctx context.Context) error
	Tags(ctx context.Context) error
	Levels(ctx context.Context) error
	NewLog(ctx context.Context) error
	Show(ctx context.Context) error
	Search(ctx context.Context) error
	Attach(ctx context.Context) error
	Download(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit". Errors returned by command handlers are ignored here;
// handlers log their own errors, which keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("olog> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			printlnFn("Available commands: info, logbooks, tags, levels, newlog, show, search, attach, get, login, exit")

		case "login":
			_ = a.Login(ctx)

		case "info":
			_ = a.Info(ctx)

		case "logbooks":
			_ = a.Logbooks(ctx)

		case "tags":
			_ = a.Tags(ctx)

		case "levels":
			_ = a.Levels(ctx)

		case "newlog":
			_ = a.NewLog(ctx)

		case "show":
			_ = a.Show(ctx)

		case "s", "search":
			_ = a.Search(ctx)

		case "attach":
			_ = a.Attach(ctx)

		case "get":
			_ = a.Download(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", parts[0])
		}
	}
}
