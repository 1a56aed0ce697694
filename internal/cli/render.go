package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Satayu47/Thai-Lottery-Prediction/internal/history"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/predict"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/stats"
)

// printJSON renders v indented, the shape every --json surface shares.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderReport(w io.Writer, report *predict.Report) {
	fmt.Fprintf(w, "Next draw: %s (%s)\n", report.TargetDate, report.DrawLabel)
	fmt.Fprintf(w, "History:   %d records\n", report.HistorySize)
	fmt.Fprintf(w, "Sync:      %s\n", describeSync(report.Sync))
	fmt.Fprintln(w)

	if len(report.Picks) == 0 {
		fmt.Fprintln(w, "No candidates scored.")
		return
	}
	fmt.Fprintf(w, "%-5s %-7s %-6s %s\n", "RANK", "NUMBER", "SCORE", "EVIDENCE")
	for i, pick := range report.Picks {
		fmt.Fprintf(w, "%-5d %-7s %-6d %s\n", i+1, pick.Number, pick.Score, strings.Join(pick.Evidence, ", "))
	}
}

func describeSync(status predict.SyncStatus) string {
	switch status.Outcome {
	case predict.SyncUpdated:
		return fmt.Sprintf("updated (%s drew %s)", status.Date, status.Number)
	case predict.SyncCurrent:
		return "already current"
	case predict.SyncSkipped:
		return fmt.Sprintf("skipped (date %q is display-only)", status.RawDate)
	default:
		return fmt.Sprintf("offline (%s)", status.Reason)
	}
}

func renderHistory(w io.Writer, records []history.Record) {
	fmt.Fprintf(w, "%-12s %s\n", "DATE", "NUMBER")
	for _, rec := range records {
		fmt.Fprintf(w, "%-12s %s\n", rec.Date, rec.Number)
	}
}

func renderDigits(w io.Writer, counts []stats.DigitCount) {
	if len(counts) == 0 {
		fmt.Fprintln(w, "History is empty.")
		return
	}
	fmt.Fprintf(w, "%-6s %-6s %s\n", "DIGIT", "COUNT", "SHARE")
	for _, c := range counts {
		fmt.Fprintf(w, "%-6s %-6d %s%%\n", c.Digit, c.Count, c.Share)
	}
}

func renderBackfill(w io.Writer, summary *predict.BackfillSummary) {
	fmt.Fprintf(w, "Target draw: %s\n", summary.Target)
	fmt.Fprintf(w, "Checked %d years: %d found, %d newly stored\n",
		summary.Checked, summary.Found, summary.Inserted)
	if len(summary.Missing) > 0 {
		fmt.Fprintf(w, "No published draw for: %v\n", summary.Missing)
	}
	for _, rec := range summary.Records {
		fmt.Fprintf(w, "  %s  %s\n", rec.Date, rec.Number)
	}
}
