package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Root runs the read–eval–print loop. It reads a line, parses the
// first token as the command and dispatches to the handlers. Handler
// errors are printed to the user and never abort the loop.
func (a *App) Root(ctx context.Context) {
	fmt.Printf("propledger (%s mode, type 'help' for commands)\n", a.mode())
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("pl %s/%s> ", a.userName, a.ledger.CurrentProperty().Name)
		if !scanner.Scan() {
			return
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
		case "properties":
			a.ListProperties()
		case "use":
			a.UseProperty(args)
		case "addprop":
			a.AddProperty(ctx, args)
		case "delprop":
			a.RemoveProperty(ctx, args)
		case "add":
			a.AddExpense(ctx)
		case "del":
			a.RemoveExpense(ctx, args)
		case "clear":
			a.ClearExpenses(ctx)
		case "list":
			a.ListExpenses()
		case "summary":
			a.Summary()
		case "export":
			a.Export(args)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	fmt.Println("Properties: properties, use <name>, addprop <name>, delprop <name>")
	fmt.Println("Expenses:   add, del <index>, clear, list")
	fmt.Println("Reports:    summary, export <file.csv>")
	fmt.Println("Other:      help, exit")
}
