package teardown

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"dhctl/pkg/compose"
	"dhctl/pkg/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	scopedDown = []string{"-p", "datahub", "down", "-v"}
	genericRm  = []string{"rm", "-f", "-v"}
)

func newOrchestrator(r Runner, base string) *Orchestrator {
	return &Orchestrator{
		Runner:  r,
		Compose: compose.Standalone(),
		BaseDir: base,
		Project: "datahub",
	}
}

func TestPlan_FixedOrder(t *testing.T) {
	o := newOrchestrator(nil, "/opt/datahub/docker")

	steps := o.Plan()
	require.Len(t, steps, 3)

	assert.Equal(t, StepScopedDown, steps[0].Name)
	assert.Equal(t, "/opt/datahub/docker", steps[0].Dir)
	assert.Equal(t, scopedDown, steps[0].Args)

	assert.Equal(t, StepGenericRemove, steps[1].Name)
	assert.Equal(t, "/opt/datahub/docker", steps[1].Dir)
	assert.Equal(t, genericRm, steps[1].Args)

	assert.Equal(t, StepIngestionDown, steps[2].Name)
	assert.Equal(t, filepath.Join("/opt/datahub/docker", "ingestion"), steps[2].Dir)
	assert.Equal(t, scopedDown, steps[2].Args)
}

func TestPlan_Defaults(t *testing.T) {
	o := &Orchestrator{BaseDir: "/srv"}

	steps := o.Plan()
	assert.Equal(t, []string{"-p", "datahub", "down", "-v"}, steps[0].Args)
	assert.Equal(t, filepath.Join("/srv", "ingestion"), steps[2].Dir)
}

func TestPlan_CustomProjectAndIngestionDir(t *testing.T) {
	o := &Orchestrator{BaseDir: "/srv", Project: "dh-dev", IngestionDir: "ingest"}

	steps := o.Plan()
	assert.Equal(t, []string{"-p", "dh-dev", "down", "-v"}, steps[0].Args)
	assert.Equal(t, []string{"rm", "-f", "-v"}, steps[1].Args)
	assert.Equal(t, []string{"-p", "dh-dev", "down", "-v"}, steps[2].Args)
	assert.Equal(t, filepath.Join("/srv", "ingest"), steps[2].Dir)
}

func TestTeardown_RunsThreeStepsInOrder(t *testing.T) {
	base := "/opt/datahub/docker"
	r := new(mocks.MockRunner)
	mock.InOrder(
		r.On("Run", base, "docker-compose", scopedDown).Return(0, nil).Once(),
		r.On("Run", base, "docker-compose", genericRm).Return(0, nil).Once(),
		r.On("Run", filepath.Join(base, "ingestion"), "docker-compose", scopedDown).Return(0, nil).Once(),
	)

	results, code := newOrchestrator(r, base).Teardown()

	assert.Equal(t, 0, code)
	assert.Len(t, results, 3)
	r.AssertExpectations(t)
	r.AssertNumberOfCalls(t, "Run", 3)
}

func TestTeardown_NoShortCircuitOnFailure(t *testing.T) {
	base := "/opt/datahub/docker"
	r := new(mocks.MockRunner)
	r.On("Run", base, "docker-compose", scopedDown).Return(1, errors.New("exit status 1")).Once()
	r.On("Run", base, "docker-compose", genericRm).Return(2, errors.New("exit status 2")).Once()
	r.On("Run", filepath.Join(base, "ingestion"), "docker-compose", scopedDown).Return(0, nil).Once()

	results, code := newOrchestrator(r, base).Teardown()

	r.AssertExpectations(t)
	assert.Equal(t, 0, code, "exit code reflects only the last step")
	require.Len(t, results, 3)
	assert.Equal(t, 1, results[0].ExitCode)
	assert.Error(t, results[0].Err)
	assert.Equal(t, 2, results[1].ExitCode)
	assert.NoError(t, results[2].Err)
}

func TestTeardown_LastStepFailureIsReturned(t *testing.T) {
	base := "/opt/datahub/docker"
	r := new(mocks.MockRunner)
	r.On("Run", base, "docker-compose", scopedDown).Return(0, nil).Once()
	r.On("Run", base, "docker-compose", genericRm).Return(0, nil).Once()
	r.On("Run", filepath.Join(base, "ingestion"), "docker-compose", scopedDown).Return(compose.ExitCommandNotFound, errors.New("not found")).Once()

	_, code := newOrchestrator(r, base).Teardown()

	assert.Equal(t, compose.ExitCommandNotFound, code)
	r.AssertExpectations(t)
}

func TestTeardown_UsesPluginPrefix(t *testing.T) {
	base := "/srv"
	r := new(mocks.MockRunner)
	r.On("Run", base, "docker", []string{"compose", "-p", "datahub", "down", "-v"}).Return(0, nil).Once()
	r.On("Run", base, "docker", []string{"compose", "rm", "-f", "-v"}).Return(0, nil).Once()
	r.On("Run", filepath.Join(base, "ingestion"), "docker", []string{"compose", "-p", "datahub", "down", "-v"}).Return(0, nil).Once()

	o := newOrchestrator(r, base)
	o.Compose = compose.Plugin()
	_, code := o.Teardown()

	assert.Equal(t, 0, code)
	r.AssertExpectations(t)
}

func TestTeardown_RepeatedRunsIssueSameCalls(t *testing.T) {
	base := "/srv"
	r := new(mocks.MockRunner)
	r.On("Run", mock.Anything, "docker-compose", mock.Anything).Return(0, nil)

	o := newOrchestrator(r, base)
	_, first := o.Teardown()
	_, second := o.Teardown()

	assert.Equal(t, 0, first)
	assert.Equal(t, 0, second)
	r.AssertNumberOfCalls(t, "Run", 6)
}

func TestPrintSummary(t *testing.T) {
	results := []Result{
		{Step: Step{Name: StepScopedDown, Dir: "/srv", Args: scopedDown}, ExitCode: 0},
		{Step: Step{Name: StepGenericRemove, Dir: "/srv", Args: genericRm}, ExitCode: 1},
	}
	var buf bytes.Buffer
	PrintSummary(&buf, compose.Standalone(), results)

	out := buf.String()
	assert.Contains(t, out, "scoped-down")
	assert.Contains(t, out, "docker-compose -p datahub down -v")
	assert.Contains(t, out, "docker-compose rm -f -v")
	assert.Contains(t, out, "EXIT CODE", "rounded style upper-cases headers")
}

func TestPrintPlan(t *testing.T) {
	o := newOrchestrator(nil, "/srv")
	var buf bytes.Buffer
	PrintPlan(&buf, compose.Plugin(), o.Plan())

	out := buf.String()
	assert.Contains(t, out, "docker compose -p datahub down -v")
	assert.Contains(t, out, "ingestion-down")
	assert.Contains(t, out, filepath.Join("/srv", "ingestion"))
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 3}
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.Contains(t, err.Error(), "exit code 3")
}
