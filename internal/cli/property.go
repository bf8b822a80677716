package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) ListProperties() {
	current := a.ledger.CurrentProperty().Name
	for _, name := range a.ledger.PropertyNames() {
		marker := "  "
		if name == current {
			marker = "* "
		}
		p, _ := a.ledger.Property(name)
		fmt.Printf("%s%s (%d expenses, total %s)\n", marker, name, len(p.Expenses), p.Total())
	}
}

func (a *App) UseProperty(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: use <name>")
		return
	}
	name := strings.Join(args, " ")
	if err := a.ledger.SetCurrentProperty(name); err != nil {
		fmt.Printf("No such property: %s\n", name)
		return
	}
}

func (a *App) AddProperty(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: addprop <name>")
		return
	}
	name := strings.Join(args, " ")
	if err := a.svc.AddProperty(ctx, a.ledger, name); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("Added property %s\n", name)
}

func (a *App) RemoveProperty(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: delprop <name>")
		return
	}
	name := strings.Join(args, " ")
	if err := a.svc.RemoveProperty(ctx, a.ledger, name); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("Removed property %s\n", name)
}
