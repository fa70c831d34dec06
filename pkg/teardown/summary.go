package teardown

import (
	"io"

	"dhctl/pkg/compose"

	"github.com/jedib0t/go-pretty/v6/table"
)

// PrintSummary renders one row per executed step.
func PrintSummary(w io.Writer, tool compose.Tool, results []Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Step", "Command", "Directory", "Exit Code"})

	for _, r := range results {
		name, argv := tool.Command(r.Step.Args...)
		t.AppendRow(table.Row{r.Step.Name, compose.Describe(name, argv), r.Step.Dir, r.ExitCode})
	}

	t.Render()
}

// PrintPlan renders the steps a teardown would run without running them.
func PrintPlan(w io.Writer, tool compose.Tool, steps []Step) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Step", "Command", "Directory"})

	for i, s := range steps {
		name, argv := tool.Command(s.Args...)
		t.AppendRow(table.Row{i + 1, s.Name, compose.Describe(name, argv), s.Dir})
	}

	t.Render()
}
