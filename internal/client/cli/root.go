package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to resipass (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if a.isLoggedIn() {
		a.refresh(ctx)
	}

	for {
		fmt.Fprintf(a.out, "resipass %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.whoami(ctx)
		case "list", "refresh":
			a.refresh(ctx)
		case "tab":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: tab <active|used|expired|cancelled>")
				continue
			}
			a.selectTab(ctx, args[0])
		case "create":
			a.create(ctx)
		case "edit":
			a.edit(ctx, args)
		case "cancel":
			a.cancel(ctx, args)
		case "delete":
			a.delete(ctx, args)
		case "qr":
			a.saveQR(ctx, args)
		case "history":
			a.history(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: list, tab <name>, create, edit <id>, cancel <id>, delete <id>, qr <id> [file], history, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, exit")
	}
}
