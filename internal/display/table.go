package display

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/backmassage/mp3mill/internal/deps"
	"github.com/backmassage/mp3mill/internal/pipeline"
)

// RenderSummary renders the end-of-run result table.
func RenderSummary(s pipeline.Summary, dryRun bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Outcome", "Files"})
	tw.AppendRows([]table.Row{
		{"Converted", s.Converted},
		{"Skipped", s.Skipped},
		{"Failed", s.Failed},
	})
	tw.AppendFooter(table.Row{"Total", s.Total})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	out := tw.Render()
	if dryRun {
		return out + "\nSpace saved: n/a (dry run)"
	}
	if s.Converted > 0 {
		out += "\nSpace saved: " + FormatBytesWithSign(s.SpaceSaved()) +
			" (input " + FormatBytes(s.InputBytes) +
			" -> output " + FormatBytes(s.OutputBytes) + ")"
	}
	return out
}

// RenderCheck renders the --check availability report.
func RenderCheck(statuses []deps.Status) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Dependency", "Command", "Available", "Detail"})
	for _, st := range statuses {
		tw.AppendRow(table.Row{
			st.Name,
			st.Command,
			strconv.FormatBool(st.Available),
			st.Detail,
		})
	}
	return tw.Render()
}
