package sqlkit

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
)

func echoStatementStart(sql string) {
	fmt.Print(text.Colors{text.FgGreen}.Sprint("EXECUTING: "))
	fmt.Print(text.Colors{text.FgHiWhite}.Sprint(previewSQL(sql)), " ")
}

func echoStatementDone(err error, duration time.Duration) {
	if err != nil {
		fmt.Printf("[  %6s  ]", text.Colors{text.FgHiRed}.Sprint("FAILED"))
	} else {
		fmt.Printf("[  %6s  ]", text.Colors{text.FgHiGreen}.Sprint("OK"))
	}

	fmt.Printf(" ---- %s", text.Colors{text.FgWhite, text.BgBlack}.Sprint(duration.String()))
	fmt.Print("\n")
}

func echoQuery(sql string) {
	fmt.Print(text.Colors{text.FgGreen}.Sprint("QUERYING:  "))
	fmt.Print(text.Colors{text.FgHiWhite}.Sprint(previewSQL(sql)))
	fmt.Print("\n")
}

// descMigration prints out the migration info in a fancy format
func descMigration(m *Migration) {
	char := "⇡"
	colors := text.Colors{text.FgBlack, text.BgHiGreen}

	fmt.Printf(
		colors.Sprintf(
			"%2s %-12s %-28d %-24s (%d statements) %2s",
			char+char,
			"APPLYING",
			m.Version,
			m.Name,
			len(m.Statements),
			char+char,
		))
	fmt.Print("\n")
}
