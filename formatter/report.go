package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/gnolang/qmc/internal/qmc"
)

const defaultFunctionName = "F"

var (
	headerStyle    = color.New(color.FgCyan, color.Bold)
	nameStyle      = color.New(color.FgYellow, color.Bold)
	resultStyle    = color.New(color.FgGreen, color.Bold)
	essentialStyle = color.New(color.FgHiYellow, color.Bold)
	selectedStyle  = color.New(color.FgGreen)
	dimStyle       = color.New(color.FgHiBlack)
)

const reportTemplate = `{{header "=== Minimized Result (SOP form) ==="}}
{{signature .}}

{{result .}}
{{if .ShowPrimes}}
{{header "=== Prime Implicants ==="}}
{{range .Primes}}{{row .}}
{{end}}{{end}}`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"header":    header,
	"signature": signature,
	"result":    result,
	"row":       row,
}).Parse(reportTemplate))

// ReportData is the input of the report template.
type ReportData struct {
	Name       string
	Variables  []string
	Minterms   []uint64
	Expression string
	ShowPrimes bool
	Primes     []PrimeRow
}

// PrimeRow is one line of the prime implicant chart. Pattern and Product
// are padded to a common width.
type PrimeRow struct {
	Index     int
	Pattern   string
	Product   string
	Covers    string
	Essential bool
	Selected  bool
}

// NewReportData prepares the template input for sol.
func NewReportData(name string, sol *qmc.Solution, s Style, showPrimes bool) ReportData {
	if name == "" {
		name = defaultFunctionName
	}
	n := sol.NumVariables
	data := ReportData{
		Name:       name,
		Variables:  s.Variables(n),
		Minterms:   sol.Minterms,
		Expression: FormatExpression(sol.Cover(), n, s),
		ShowPrimes: showPrimes,
	}
	if !showPrimes {
		return data
	}

	products := make([]string, len(sol.Primes))
	width := 0
	for i, p := range sol.Primes {
		products[i] = FormatTerm(p, n, s)
		if w := len([]rune(products[i])); w > width {
			width = w
		}
	}
	for i, p := range sol.Primes {
		data.Primes = append(data.Primes, PrimeRow{
			Index:     i,
			Pattern:   Pattern(p, n),
			Product:   products[i] + strings.Repeat(" ", width-len([]rune(products[i]))),
			Covers:    "m(" + joinMinterms(coveredMinterms(p, sol.Minterms)) + ")",
			Essential: sol.IsEssential(i),
			Selected:  sol.IsSelected(i),
		})
	}
	return data
}

// coveredMinterms keeps the function's minterms covered by t, in input
// order.
func coveredMinterms(t qmc.Term, minterms []uint64) []uint64 {
	var out []uint64
	for _, m := range minterms {
		if t.Covers(m) {
			out = append(out, m)
		}
	}
	return out
}

// Report renders the minimized function as text.
func Report(name string, sol *qmc.Solution, s Style, showPrimes bool) string {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, NewReportData(name, sol, s, showPrimes)); err != nil {
		return fmt.Sprintf("Error formatting report: %v", err)
	}
	return buf.String()
}

// Summary renders the minimized function on a single line.
func Summary(name string, sol *qmc.Solution, s Style) string {
	if name == "" {
		name = defaultFunctionName
	}
	return nameStyle.Sprint(name) + " = " + resultStyle.Sprint(FormatExpression(sol.Cover(), sol.NumVariables, s))
}

// template helpers

func header(text string) string {
	return headerStyle.Sprint(text)
}

func signature(d ReportData) string {
	return fmt.Sprintf("%s(%s) = ∑m(%s)",
		nameStyle.Sprint(d.Name), strings.Join(d.Variables, ", "), joinMinterms(d.Minterms))
}

func result(d ReportData) string {
	return nameStyle.Sprint(d.Name) + " = " + resultStyle.Sprint(d.Expression)
}

func row(r PrimeRow) string {
	line := fmt.Sprintf("P%-3d %s  %s  %s", r.Index, r.Pattern, r.Product, r.Covers)
	switch {
	case r.Essential:
		return line + "  " + essentialStyle.Sprint("essential")
	case r.Selected:
		return line + "  " + selectedStyle.Sprint("selected")
	default:
		return dimStyle.Sprint(line)
	}
}
