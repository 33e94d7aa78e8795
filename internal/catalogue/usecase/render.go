package usecase

import (
	"embed"
	"strings"
	"text/template"
	"time"

	"legaldata-srv/internal/catalogue"
	"legaldata-srv/pkg/util"
)

//go:embed templates/readme.md.tmpl
var readmeTemplates embed.FS

const readmeTemplate = "readme.md.tmpl"

var readmeTmpl = template.Must(template.New(readmeTemplate).
	Funcs(template.FuncMap{"count": catalogue.FormatCount}).
	ParseFS(readmeTemplates, "templates/"+readmeTemplate))

// readmeData is the data injected into the README template.
type readmeData struct {
	Date  time.Time
	Cases catalogue.Section
	Laws  catalogue.Section
}

// renderReadme assembles the full README document.
func renderReadme(data readmeData) (string, error) {
	var sb strings.Builder
	err := readmeTmpl.Execute(&sb, struct {
		Date  string
		Cases catalogue.Section
		Laws  catalogue.Section
	}{
		Date:  util.DateToStr(data.Date),
		Cases: data.Cases,
		Laws:  data.Laws,
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
