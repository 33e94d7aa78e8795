package catalogue

import (
	"time"

	"legaldata-srv/internal/model"
)

const (
	DocTypeCases = "cases"
	DocTypeLaws  = "laws"
)

// Category is one document category of the catalogue and its table layout.
type Category struct {
	DocType string
	// Label names the category in the run summary.
	Label string
	// Order lists the dataset codes rendered, in table order. Codes outside it are dropped.
	Order     []string
	CodeWidth int
	DescWidth int
}

var (
	CasesCategory = Category{
		DocType:   DocTypeCases,
		Label:     "cases",
		Order:     []string{"SCC", "FCA", "ONCA", "FC", "TCC", "CMAC", "SST", "RAD", "RPD", "RLLR", "CHRT"},
		CodeWidth: 6,
		DescWidth: 40,
	}
	LawsCategory = Category{
		DocType:   DocTypeLaws,
		Label:     "laws/regulations",
		Order:     []string{"LEGISLATION-FED", "REGULATIONS-FED"},
		CodeWidth: 15,
		DescWidth: 25,
	}
)

// Categories returns the categories in fetch and render order.
func Categories() []Category {
	return []Category{CasesCategory, LawsCategory}
}

type GenerateInput struct {
	// Date is printed as "Last updated". Zero means today.
	Date time.Time
}

// Section is the rendered table of one category.
type Section struct {
	DocType string
	Rows    []string
	// Matched holds the dataset codes that produced a row, in row order.
	Matched []string
	Total   int64
	// Degraded is set when the category fetch failed and the table is empty.
	Degraded bool
}

// MirrorLocation is where a README copy was published.
type MirrorLocation struct {
	Location    string
	DownloadURL string
}

type GenerateOutput struct {
	RunID        string
	OutputPath   string
	BytesWritten int
	Cases        Section
	Laws         Section
	GrandTotal   int64
	Mirrors      []MirrorLocation
	// Previous is the snapshot of the last run, when a snapshot store is configured.
	Previous *model.Snapshot
}

// Degraded reports whether any category fetch failed.
func (o GenerateOutput) Degraded() bool {
	return o.Cases.Degraded || o.Laws.Degraded
}
