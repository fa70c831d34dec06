package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockRunner is a testify mock for teardown.Runner.
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(dir, name string, cmdArgs ...string) (int, error) {
	args := m.Called(dir, name, cmdArgs)
	return args.Int(0), args.Error(1)
}
