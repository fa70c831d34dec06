package cmd

import (
	"fmt"
	"io"

	"dhctl/pkg/status"
	"dhctl/pkg/ui"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List docker resources still belonging to the DataHub project",
	Long:  `Queries the Docker Engine for containers, volumes and networks labelled with the compose project, to confirm whether a teardown left anything behind.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := status.NewDockerClient()
		if err != nil {
			return err
		}
		defer func() { _ = cli.Close() }()

		project := resolvedProject()
		spinner, _ := ui.Spin(fmt.Sprintf("Looking up resources of project %q...", project))
		st, err := status.Gather(cmd.Context(), cli, project)
		if err != nil {
			spinner.Fail("Failed to query docker")
			return err
		}
		spinner.Success("Docker queried")

		renderStatus(cmd.OutOrStdout(), st)
		return nil
	},
}

func renderStatus(w io.Writer, st status.EnvironmentStatus) {
	if st.Clean() {
		ui.Success.Println(fmt.Sprintf("No containers, volumes or networks remain for project %q.", st.Project))
		return
	}

	if len(st.Containers) > 0 {
		t := newTable(w, table.Row{"Container", "Service", "State", "Status"})
		for _, c := range st.Containers {
			t.AppendRow(table.Row{c.Name, c.Service, c.State, c.Status})
		}
		ui.Info.Println("Containers")
		t.Render()
	}

	if len(st.Volumes) > 0 {
		t := newTable(w, table.Row{"Volume", "Driver"})
		for _, v := range st.Volumes {
			t.AppendRow(table.Row{v.Name, v.Driver})
		}
		ui.Info.Println("Volumes")
		t.Render()
	}

	if len(st.Networks) > 0 {
		t := newTable(w, table.Row{"Network", "Driver"})
		for _, n := range st.Networks {
			t.AppendRow(table.Row{n.Name, n.Driver})
		}
		ui.Info.Println("Networks")
		t.Render()
	}

	ui.Warn.Println("Run `dhctl` to remove them.")
}

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(header)
	return t
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
