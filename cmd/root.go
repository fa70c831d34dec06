package cmd

import (
	"errors"
	"fmt"
	"os"

	"dhctl/pkg/compose"
	"dhctl/pkg/config"
	"dhctl/pkg/paths"
	"dhctl/pkg/teardown"
	"dhctl/pkg/ui"
	"dhctl/pkg/validate"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configFile   string
	baseDir      string
	projectName  string
	ingestionDir string
	dryRun       bool
)

// newRunner is replaced in tests.
var newRunner = func() teardown.Runner {
	return compose.NewExecRunner()
}

var rootCmd = &cobra.Command{
	Use:   "dhctl",
	Short: "dhctl tears down a local DataHub docker compose deployment",
	Long: `Stops and removes the containers, volumes and networks of a local DataHub
deployment: the "datahub" compose project, any stopped service containers,
and the ingestion environment in the ingestion/ subdirectory.

Compose files are resolved relative to the dhctl executable, not the current
directory. Every step runs even if an earlier one fails; the exit code is that
of the last step.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runTeardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", config.DefaultConfigFile, "Path to the dhctl.yaml configuration file")
	addTeardownFlags(rootCmd.PersistentFlags())
}

func addTeardownFlags(fs *pflag.FlagSet) {
	fs.StringVar(&baseDir, "dir", "", "Directory holding the DataHub compose files (default: directory of the dhctl executable)")
	fs.StringVarP(&projectName, "project", "p", "", "Compose project name (default \"datahub\")")
	fs.StringVar(&ingestionDir, "ingestion-dir", "", "Ingestion environment subdirectory (default \"ingestion\")")
	fs.BoolVar(&dryRun, "dry-run", false, "Print the teardown steps without running them")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	printBanner(cmd)

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	config.Loaded = cfg

	if projectName != "" {
		if err := validate.ProjectName(projectName); err != nil {
			return err
		}
	}
	if baseDir != "" {
		if err := validate.BaseDir(baseDir); err != nil {
			return fmt.Errorf("invalid --dir: %w", err)
		}
	}
	if ingestionDir != "" {
		if err := validate.SubDir(ingestionDir); err != nil {
			return fmt.Errorf("invalid --ingestion-dir: %w", err)
		}
	}
	return nil
}

// printBanner writes the logo to stderr so stdout stays clean for piping.
// Shell completion requests never get it.
func printBanner(cmd *cobra.Command) {
	switch cmd.Name() {
	case cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return
	}
	ui.PrintBanner(cmd.ErrOrStderr())
}

// resolvedProject applies flag, then config, then default.
func resolvedProject() string {
	if projectName != "" {
		return projectName
	}
	return config.Loaded.GetProject()
}

func newOrchestrator() (*teardown.Orchestrator, error) {
	override := baseDir
	if override == "" {
		override = config.Loaded.GetBaseDir()
	}
	base, err := paths.Resolve(override)
	if err != nil {
		return nil, err
	}

	sub := ingestionDir
	if sub == "" {
		sub = config.Loaded.GetIngestionDir()
	}

	tool, err := compose.Detect(config.Loaded.GetCompose())
	if err != nil {
		ui.Warn.Println(fmt.Sprintf("%s; running %s anyway", err.Error(), tool))
	}

	return &teardown.Orchestrator{
		Runner:       newRunner(),
		Compose:      tool,
		BaseDir:      base,
		Project:      resolvedProject(),
		IngestionDir: sub,
	}, nil
}

func runTeardown(cmd *cobra.Command, args []string) error {
	o, err := newOrchestrator()
	if err != nil {
		return err
	}

	if dryRun {
		ui.Info.Println("Dry run: no commands will be executed.")
		teardown.PrintPlan(cmd.OutOrStdout(), o.Compose, o.Plan())
		return nil
	}

	ui.Info.Println(fmt.Sprintf("%s Tearing down compose project %q from %s", ui.DockerEmoji, o.Project, o.BaseDir))
	results, code := o.Teardown()
	teardown.PrintSummary(cmd.OutOrStdout(), o.Compose, results)

	if code != 0 {
		return &teardown.ExitError{Code: code}
	}
	ui.Success.Println(fmt.Sprintf("%s DataHub environment torn down.", ui.CleanEmoji))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *teardown.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		ui.Error.Println(err.Error())
		os.Exit(1)
	}
}

// GetRootCmd returns the root cobra command
func GetRootCmd() *cobra.Command {
	return rootCmd
}
