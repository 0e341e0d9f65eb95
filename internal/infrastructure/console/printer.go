// Package console renders plan previews, run summaries, and patch-list
// listings for the terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
)

const separator = "------------------------------------------------------------"

// Printer writes human-readable reports. It defaults to stdout; tests swap
// the writer.
type Printer struct {
	writer io.Writer
}

// NewPrinter creates a Printer bound to stdout.
func NewPrinter() *Printer {
	return &Printer{writer: os.Stdout}
}

// NewPrinterTo creates a Printer bound to the given writer.
func NewPrinterTo(w io.Writer) *Printer {
	return &Printer{writer: w}
}

// PlanPreview renders every plan with its full commit message, the way live
// mode would apply them.
func (p *Printer) PlanPreview(plans []entities.CommitPlan) {
	bold := color.New(color.Bold)

	bold.Fprintln(p.writer, "========== Commit Plan ==========")
	for i, plan := range plans {
		fmt.Fprintf(p.writer, "\n[%d] Project: %s\n", i+1, displayProject(plan.Project))
		fmt.Fprintf(p.writer, "    CR: %s\n", plan.CRID)
		fmt.Fprintf(p.writer, "    Title: %s\n", plan.Title)
		fmt.Fprintf(p.writer, "    Files (%d):\n", len(plan.Files))
		for _, f := range plan.Files {
			fmt.Fprintf(p.writer, "      - %s\n", f)
		}
	}

	fmt.Fprintln(p.writer)
	bold.Fprintln(p.writer, "========== Message Previews ==========")
	for i, plan := range plans {
		fmt.Fprintf(p.writer, "\n--- Commit #%d - Project: %s ---\n", i+1, displayProject(plan.Project))
		fmt.Fprintln(p.writer, plan.Message())
		fmt.Fprintln(p.writer, separator)
	}
}

// Summary renders the per-plan outcome table and the totals line.
func (p *Printer) Summary(summary *entities.RunSummary) {
	if len(summary.Results) == 0 {
		fmt.Fprintln(p.writer, "Nothing to commit.")
		return
	}

	bold := color.New(color.Bold)
	bold.Fprintln(p.writer, "========== Run Summary ==========")

	for _, r := range summary.Results {
		fmt.Fprintf(
			p.writer, "%-10s %s %s",
			statusLabel(r.Status), displayProject(r.Plan.Project), r.Plan.CRID,
		)
		switch {
		case r.CommitID != "":
			fmt.Fprintf(p.writer, " (%.10s)", r.CommitID)
		case r.Reason != "":
			fmt.Fprintf(p.writer, " (%s)", r.Reason)
		case r.Err != nil:
			fmt.Fprintf(p.writer, " (%v)", r.Err)
		}
		fmt.Fprintln(p.writer)
	}

	fmt.Fprintf(
		p.writer, "\n%d committed, %d skipped, %d failed\n",
		summary.CountByStatus(entities.StatusCommitted),
		summary.CountByStatus(entities.StatusSkipped),
		summary.CountByStatus(entities.StatusFailed),
	)
}

// PatchList renders the change requests of a parsed patch list.
func (p *Printer) PatchList(list *entities.PatchList) {
	bold := color.New(color.Bold)

	for _, cr := range list.ChangeRequests() {
		bold.Fprintf(p.writer, "%s", cr.ID)
		var attrs []string
		if cr.PatchType != "" {
			attrs = append(attrs, cr.PatchType)
		}
		if cr.Severity != "" {
			attrs = append(attrs, cr.Severity)
		}
		if len(attrs) > 0 {
			fmt.Fprintf(p.writer, " (%s)", strings.Join(attrs, ", "))
		}
		fmt.Fprintln(p.writer)

		if cr.Summary != "" {
			fmt.Fprintf(p.writer, "  %s\n", cr.Summary)
		}
		fmt.Fprintf(p.writer, "  %d file(s)\n", list.FileCount(cr.ID))
	}

	fmt.Fprintf(
		p.writer, "\n%d change request(s), %d file(s) total\n",
		len(list.Requests), len(list.Entries),
	)
}

func statusLabel(status entities.ExecutionStatus) string {
	switch status {
	case entities.StatusCommitted:
		return color.New(color.FgGreen).Sprint(string(status))
	case entities.StatusSkipped:
		return color.New(color.FgYellow).Sprint(string(status))
	case entities.StatusFailed:
		return color.New(color.FgRed).Sprint(string(status))
	default:
		return string(status)
	}
}

func displayProject(project string) string {
	if project == "" {
		return "(root)"
	}
	return project
}
