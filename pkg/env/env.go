package env

import (
	"fmt"
	"os"
	"os/exec"
)

// ComposeEnvVar lets users force a compose flavour ("docker-compose" or "docker").
const ComposeEnvVar = "DHCTL_COMPOSE"

const (
	FlavourStandalone = "docker-compose"
	FlavourPlugin     = "docker"
)

// CheckResult holds the status of prerequisite checks
type CheckResult struct {
	HasDockerCompose bool
	HasDocker        bool
}

// Flavour returns the compose flavour to invoke. An explicit preference wins,
// then the DHCTL_COMPOSE environment variable, then the standalone
// docker-compose binary, then the docker compose plugin.
func (c *CheckResult) Flavour(pref string) (string, error) {
	if pref == "" {
		pref = os.Getenv(ComposeEnvVar)
	}
	switch pref {
	case FlavourStandalone:
		if c.HasDockerCompose {
			return FlavourStandalone, nil
		}
	case FlavourPlugin:
		if c.HasDocker {
			return FlavourPlugin, nil
		}
	}

	if c.HasDockerCompose {
		return FlavourStandalone, nil
	}
	if c.HasDocker {
		return FlavourPlugin, nil
	}
	return "", fmt.Errorf("neither docker-compose nor docker found in PATH")
}

// CheckPrerequisites verifies if required tools are installed
func CheckPrerequisites() *CheckResult {
	res := &CheckResult{}

	if _, err := exec.LookPath(FlavourStandalone); err == nil {
		res.HasDockerCompose = true
	}
	if _, err := exec.LookPath(FlavourPlugin); err == nil {
		res.HasDocker = true
	}

	return res
}
