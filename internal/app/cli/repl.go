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
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	AddShimLog(ctx context.Context) error
	ListShimLogs(ctx context.Context) error
	DeleteShimLog(ctx context.Context) error
	Export(ctx context.Context) error
	CreateReport(ctx context.Context) error
	ListReports(ctx context.Context) error
	DeleteReport(ctx context.Context) error
	AddUser(ctx context.Context) error
	RemoveUser(ctx context.Context) error
	ListUsers(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands before login: help, login, exit. After login: the shim, report
// and export commands; admin accounts additionally get adduser, deluser and
// users. Every command except login requires an authenticated session, and
// the admin commands require the admin role — both are enforced here, on
// top of whatever the stores enforce themselves.
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gas> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: login, exit")
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Please log in first (type 'login').")
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: shim, shims, delshim, export, report, reports, delreport, whoami, logout, exit")
			if a.isAdmin() {
				printlnFn("Admin commands: adduser, deluser, users")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "shim":
			_ = a.AddShimLog(ctx)

		case "shims", "logs":
			_ = a.ListShimLogs(ctx)

		case "delshim":
			_ = a.DeleteShimLog(ctx)

		case "export":
			_ = a.Export(ctx)

		case "report":
			_ = a.CreateReport(ctx)

		case "reports":
			_ = a.ListReports(ctx)

		case "delreport":
			_ = a.DeleteReport(ctx)

		case "adduser":
			if !a.isAdmin() {
				printlnFn("Admin only.")
				continue
			}
			_ = a.AddUser(ctx)

		case "deluser":
			if !a.isAdmin() {
				printlnFn("Admin only.")
				continue
			}
			_ = a.RemoveUser(ctx)

		case "users":
			if !a.isAdmin() {
				printlnFn("Admin only.")
				continue
			}
			_ = a.ListUsers(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
