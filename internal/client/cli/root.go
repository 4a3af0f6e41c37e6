package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

func (a *App) prompt() string {
	if a.email != "" {
		return fmt.Sprintf("boardctl (%s)> ", a.email)
	}
	return "boardctl> "
}

func (a *App) runCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.api.IsLoggedIn() {
			fmt.Fprintln(a.out, "Available commands: boards, open <id>, addboard, addlist <board-id>, addcard <list-id>, exit")
		} else {
			fmt.Fprintln(a.out, "Available commands: register, login, exit")
		}
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "boards":
		return a.ListBoards(ctx)
	case "addboard":
		return a.AddBoard(ctx)
	case "open":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: open <board-id>")
			return nil
		}
		return a.ShowBoard(ctx, args[0])
	case "addlist":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: addlist <board-id>")
			return nil
		}
		return a.AddList(ctx, args[0])
	case "addcard":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: addcard <list-id>")
			return nil
		}
		return a.AddCard(ctx, args[0])
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}

// Root runs the interactive loop until the input is exhausted or the user
// types exit.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to boardctl (type 'help' for commands)")
	scanner := bufio.NewScanner(a.reader)

	for {
		fmt.Fprint(a.out, a.prompt())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(a.out, "Bye!")
			return
		}

		if !a.api.IsLoggedIn() {
			switch cmd {
			case "help", "register", "login":
			default:
				fmt.Fprintln(a.out, "Please log in first (type 'login' or 'register').")
				continue
			}
		}

		if err := a.runCommand(ctx, cmd, args); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
		}
	}
}
