package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The shell session satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Show(ctx context.Context, id string) error
	Count(ctx context.Context) error
	Save(ctx context.Context) error
}

const replHelp = "Available commands: (l)ist, add, edit [id], delete [id], show [id], count, save, exit"

// runREPL starts a simple read–eval–print loop over the account store.
//
// It reads a line from reader, parses the first token as the command and
// the optional second token as an account id, and dispatches to a. The
// loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "ak %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, id := parts[0], ""
		if len(parts) > 1 {
			id = parts[1]
		}

		var herr error
		switch cmd {
		case "help", "?":
			fmt.Fprintln(w, replHelp)

		case "l", "list":
			herr = a.List(ctx)

		case "add":
			herr = a.Add(ctx)

		case "edit", "update":
			herr = a.Edit(ctx, id)

		case "delete", "rm":
			herr = a.Delete(ctx, id)

		case "show":
			herr = a.Show(ctx, id)

		case "count":
			herr = a.Count(ctx)

		case "save":
			herr = a.Save(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if herr != nil {
			fmt.Fprintln(w, "Error:", herr)
		}
	}
}
