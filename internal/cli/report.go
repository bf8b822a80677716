package cli

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/propledger/internal/report"
)

func (a *App) Summary() {
	p := a.ledger.CurrentProperty()
	totals := report.Summarize(p)
	if len(totals) == 0 {
		fmt.Println("Nothing to summarize yet.")
		return
	}
	for _, ct := range totals {
		fmt.Printf("%-20s %12s  %5.1f%%\n", ct.Category, ct.Amount.StringFixed(2), ct.Share)
	}
	fmt.Printf("Total: %s\n", p.Total().StringFixed(2))
}

func (a *App) Export(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: export <file.csv>")
		return
	}

	f, err := os.Create(args[0])
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer f.Close()

	if err := report.WriteCSV(f, a.ledger.CurrentProperty()); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("Exported %s to %s\n", a.ledger.CurrentProperty().Name, args[0])
}
