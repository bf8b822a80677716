package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/propledger/internal/models"
)

// AddExpense collects one expense record interactively and appends it
// to the current property.
func (a *App) AddExpense(ctx context.Context) {
	dateStr, err := GetTextWithDefault(a.reader, "Date (YYYY-MM-DD)", models.Today().String(), os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	date, err := models.ParseDate(dateStr)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	prompt := fmt.Sprintf("Category (e.g. %s)", strings.Join(models.PresetCategories, ", "))
	category, err := GetSimpleText(a.reader, prompt+":", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if category == "" {
		fmt.Println("Category must not be empty")
		return
	}

	amountStr, err := GetSimpleText(a.reader, "Amount:", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		fmt.Printf("Invalid amount %q\n", amountStr)
		return
	}

	note, err := GetSimpleText(a.reader, "Note (optional):", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	e := models.Expense{Date: date, Category: category, Amount: amount, Note: note}
	if err := a.svc.AddExpense(ctx, a.ledger, a.ledger.CurrentProperty().Name, e); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("Added %s record\n", category)
}

func (a *App) RemoveExpense(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: del <index>")
		return
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid index %q\n", args[0])
		return
	}
	if err := a.svc.RemoveExpenseAt(ctx, a.ledger, a.ledger.CurrentProperty().Name, i); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("Removed expense %d\n", i)
}

func (a *App) ClearExpenses(ctx context.Context) {
	name := a.ledger.CurrentProperty().Name
	if err := a.svc.ClearProperty(ctx, a.ledger, name); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("Cleared all expenses of %s\n", name)
}

func (a *App) ListExpenses() {
	p := a.ledger.CurrentProperty()
	if len(p.Expenses) == 0 {
		fmt.Println("No expenses yet. Use 'add' to create one.")
		return
	}
	for i, e := range p.Expenses {
		note := e.Note
		if note == "" {
			note = "-"
		}
		fmt.Printf("%3d  %s  %-14s %12s  %s\n", i, e.Date, e.Category, e.Amount.StringFixed(2), note)
	}
	fmt.Printf("Total: %s\n", p.Total().StringFixed(2))
}
