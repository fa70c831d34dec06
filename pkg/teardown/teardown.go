// Package teardown stops and removes every container, volume and network of
// a local DataHub deployment: the main compose project and the separately
// composed ingestion environment.
//
// Steps run strictly in order and a failing step never stops the ones after
// it. The overall exit status is the last step's.
package teardown

import (
	"fmt"

	"dhctl/pkg/compose"
	"dhctl/pkg/paths"
	"dhctl/pkg/ui"
)

const (
	StepScopedDown    = "scoped-down"
	StepGenericRemove = "generic-rm"
	StepIngestionDown = "ingestion-down"
)

// Runner executes a command in dir and returns its exit code. A non-zero
// code comes with a non-nil error.
type Runner interface {
	Run(dir, name string, args ...string) (int, error)
}

// Step is one compose invocation.
type Step struct {
	Name string
	Dir  string
	Args []string
}

// Result is the outcome of a single step.
type Result struct {
	Step     Step
	ExitCode int
	Err      error
}

// Orchestrator runs the fixed teardown sequence.
type Orchestrator struct {
	Runner       Runner
	Compose      compose.Tool
	BaseDir      string
	Project      string
	IngestionDir string
}

// Plan returns the three teardown steps in execution order.
func (o *Orchestrator) Plan() []Step {
	project := o.Project
	if project == "" {
		project = paths.DefaultProject
	}
	return []Step{
		{Name: StepScopedDown, Dir: o.BaseDir, Args: []string{"-p", project, "down", "-v"}},
		{Name: StepGenericRemove, Dir: o.BaseDir, Args: []string{"rm", "-f", "-v"}},
		{Name: StepIngestionDown, Dir: paths.Ingestion(o.BaseDir, o.IngestionDir), Args: []string{"-p", project, "down", "-v"}},
	}
}

// Teardown runs every planned step and returns their results together with
// the exit code of the last one.
func (o *Orchestrator) Teardown() ([]Result, int) {
	steps := o.Plan()
	results := make([]Result, 0, len(steps))

	for _, step := range steps {
		name, argv := o.Compose.Command(step.Args...)
		ui.Step.Println(fmt.Sprintf("%s (in %s)", compose.Describe(name, argv), step.Dir))

		code, err := o.Runner.Run(step.Dir, name, argv...)
		if err != nil {
			ui.Warn.Println(fmt.Sprintf("%s exited with %d: %v", step.Name, code, err))
		}
		results = append(results, Result{Step: step, ExitCode: code, Err: err})
	}

	return results, results[len(results)-1].ExitCode
}

// ExitError carries a non-zero teardown status out to the CLI entrypoint.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("teardown finished with exit code %d", e.Code)
}
