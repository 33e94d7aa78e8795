package catalogue

import (
	"fmt"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with comma thousands separators.
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// SummaryLines returns the lines printed after a successful run.
func SummaryLines(out GenerateOutput) []string {
	return []string{
		fmt.Sprintf("%s generated successfully!", filepath.Base(out.OutputPath)),
		fmt.Sprintf("Total %s: %s", CasesCategory.Label, FormatCount(out.Cases.Total)),
		fmt.Sprintf("Total %s: %s", LawsCategory.Label, FormatCount(out.Laws.Total)),
		fmt.Sprintf("Total documents: %s", FormatCount(out.GrandTotal)),
	}
}
