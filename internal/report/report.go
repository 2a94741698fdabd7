package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/opendatahub-io/rhaii-on-xks/internal/errors"
	"github.com/opendatahub-io/rhaii-on-xks/pkg/model"
)

const headerWidth = 50

// Renderer prints the validation report. Presentation only: colors, layout,
// summary counts. It never interprets check messages.
type Renderer struct {
	out io.Writer

	green  func(a ...interface{}) string
	red    func(a ...interface{}) string
	yellow func(a ...interface{}) string
	bold   func(a ...interface{}) string
	dim    func(a ...interface{}) string
}

// ColorEnabled reports whether colored output is appropriate for f: an
// explicit opt-out wins, otherwise f must be a terminal. Piped and
// redirected output stays escape-free.
func ColorEnabled(noColor bool, f *os.File) bool {
	if noColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// New creates a Renderer writing to out. Coloring is forced on or off
// rather than TTY-sniffed, so output is deterministic; callers resolve
// the terminal question through ColorEnabled.
func New(out io.Writer, noColor bool) *Renderer {
	sprint := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
		return c.SprintFunc()
	}
	return &Renderer{
		out:    out,
		green:  sprint(color.FgGreen),
		red:    sprint(color.FgRed),
		yellow: sprint(color.FgYellow),
		bold:   sprint(color.Bold),
		dim:    sprint(color.Faint),
	}
}

// Render prints the full report and returns the number of failed mandatory
// checks — failed optional checks are shown but never counted.
func (r *Renderer) Render(results []model.CheckResult, runID string, diags []errors.Diagnostic) int {
	rule := strings.Repeat("=", headerWidth)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.bold(rule))
	fmt.Fprintln(r.out, r.bold("  RHAII on xKS Preflight Validation Report"))
	fmt.Fprintln(r.out, r.dim("  run "+runID))
	fmt.Fprintln(r.out, r.bold(rule))

	var passed, failed, optionalFailed int
	for _, suiteName := range suiteOrder(results) {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "  %s\n", r.bold(suiteTitle(suiteName)))
		fmt.Fprintln(r.out, r.dim("  "+strings.Repeat("-", headerWidth-2)))

		table := tablewriter.NewWriter(r.out)
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(false)
		table.SetHeaderLine(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetBorder(false)
		table.SetTablePadding("  ")
		table.SetNoWhiteSpace(true)

		for _, res := range results {
			if res.Suite != suiteName {
				continue
			}
			switch {
			case res.Outcome.Success:
				table.Append([]string{"  " + r.green("PASS"), res.Name, ""})
				passed++
			case res.Optional:
				table.Append([]string{"  " + r.yellow("SKIP"), res.Name, r.dim("(optional)")})
				optionalFailed++
			default:
				table.Append([]string{"  " + r.red("FAIL"), res.Name, r.dim("-> " + res.SuggestedAction)})
				failed++
			}
		}
		table.Render()
	}

	if len(diags) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, r.dim("  Diagnostics:"))
		for _, d := range diags {
			fmt.Fprintf(r.out, "  %s\n", r.dim(fmt.Sprintf("[%s] %s: %s", d.Code, d.Check, d.Message)))
		}
	}

	parts := []string{
		r.green(fmt.Sprintf("%d passed", passed)),
		r.red(fmt.Sprintf("%d failed", failed)),
	}
	if optionalFailed > 0 {
		parts = append(parts, r.yellow(fmt.Sprintf("%d optional", optionalFailed)))
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.bold(rule))
	fmt.Fprintf(r.out, "  Results:  %s\n", strings.Join(parts, "  |  "))
	fmt.Fprintln(r.out, r.bold(rule))
	fmt.Fprintln(r.out)

	return failed
}

// suiteOrder returns the distinct suite names in first-seen order.
func suiteOrder(results []model.CheckResult) []string {
	var order []string
	seen := make(map[string]bool)
	for _, res := range results {
		if !seen[res.Suite] {
			seen[res.Suite] = true
			order = append(order, res.Suite)
		}
	}
	return order
}

// suiteTitle maps a suite name to its report section title.
func suiteTitle(name string) string {
	switch name {
	case "cluster":
		return "Cluster readiness"
	case "operators":
		return "Operators readiness"
	default:
		return name
	}
}
