package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a stub.
type execIface interface {
	Help(ctx context.Context) error
	Add(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Settle(ctx context.Context) error
	EndMonth(ctx context.Context) error
	Months(ctx context.Context) error
	Month(ctx context.Context, id string) error
	Analytics(ctx context.Context) error
	Export(ctx context.Context, path string) error
	ExportMonth(ctx context.Context, id, path string) error
	Receipt(ctx context.Context, id, path string) error
	Unreceipt(ctx context.Context, id string) error
	Lang(ctx context.Context, lang string) error
	Theme(ctx context.Context, theme string) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit". Handler
// errors are reported by the handlers themselves, so the loop ignores them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("rs %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		arg := func(i int) string {
			if i < len(args) {
				return args[i]
			}
			return ""
		}

		switch cmd {
		case "help":
			_ = a.Help(ctx)
		case "add":
			_ = a.Add(ctx, args)
		case "l", "list":
			_ = a.List(ctx)
		case "show":
			_ = a.Show(ctx, arg(0))
		case "delete":
			_ = a.Delete(ctx, arg(0))
		case "settle":
			_ = a.Settle(ctx)
		case "endmonth":
			_ = a.EndMonth(ctx)
		case "months":
			_ = a.Months(ctx)
		case "month":
			_ = a.Month(ctx, arg(0))
		case "analytics":
			_ = a.Analytics(ctx)
		case "export":
			_ = a.Export(ctx, arg(0))
		case "export-month":
			_ = a.ExportMonth(ctx, arg(0), arg(1))
		case "receipt":
			_ = a.Receipt(ctx, arg(0), strings.Join(args[min(1, len(args)):], " "))
		case "unreceipt":
			_ = a.Unreceipt(ctx, arg(0))
		case "lang":
			_ = a.Lang(ctx, arg(0))
		case "theme":
			_ = a.Theme(ctx, arg(0))
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
