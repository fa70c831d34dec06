// Package status reports which docker resources of a compose project still
// exist, so a user can confirm a teardown left nothing behind.
package status

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/volume"
	"github.com/docker/docker/client"
)

const (
	LabelProject = "com.docker.compose.project"
	LabelService = "com.docker.compose.service"
)

// DockerAPI is the subset of the Docker Engine client used here.
type DockerAPI interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	VolumeList(ctx context.Context, options volume.ListOptions) (volume.ListResponse, error)
	NetworkList(ctx context.Context, options network.ListOptions) ([]network.Summary, error)
}

type ContainerStat struct {
	Name    string
	Service string
	State   string
	Status  string
}

type VolumeStat struct {
	Name   string
	Driver string
}

type NetworkStat struct {
	Name   string
	Driver string
}

type EnvironmentStatus struct {
	Project    string
	Containers []ContainerStat
	Volumes    []VolumeStat
	Networks   []NetworkStat
}

// Clean reports whether no resources of the project remain.
func (s EnvironmentStatus) Clean() bool {
	return len(s.Containers) == 0 && len(s.Volumes) == 0 && len(s.Networks) == 0
}

// NewDockerClient connects to the daemon configured by DOCKER_HOST and
// friends, negotiating the API version.
func NewDockerClient() (*client.Client, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return cli, nil
}

func projectFilter(project string) filters.Args {
	return filters.NewArgs(filters.Arg("label", LabelProject+"="+project))
}

// Gather lists every container (running or not), volume and network
// labelled with the compose project.
func Gather(ctx context.Context, api DockerAPI, project string) (EnvironmentStatus, error) {
	st := EnvironmentStatus{Project: project}
	f := projectFilter(project)

	containers, err := api.ContainerList(ctx, container.ListOptions{All: true, Filters: f})
	if err != nil {
		return st, fmt.Errorf("listing containers: %w", err)
	}
	for _, c := range containers {
		st.Containers = append(st.Containers, ContainerStat{
			Name:    containerName(c.Names, c.ID),
			Service: c.Labels[LabelService],
			State:   string(c.State),
			Status:  c.Status,
		})
	}
	sort.Slice(st.Containers, func(i, j int) bool { return st.Containers[i].Name < st.Containers[j].Name })

	volumes, err := api.VolumeList(ctx, volume.ListOptions{Filters: f})
	if err != nil {
		return st, fmt.Errorf("listing volumes: %w", err)
	}
	for _, v := range volumes.Volumes {
		if v == nil {
			continue
		}
		st.Volumes = append(st.Volumes, VolumeStat{Name: v.Name, Driver: v.Driver})
	}
	sort.Slice(st.Volumes, func(i, j int) bool { return st.Volumes[i].Name < st.Volumes[j].Name })

	networks, err := api.NetworkList(ctx, network.ListOptions{Filters: f})
	if err != nil {
		return st, fmt.Errorf("listing networks: %w", err)
	}
	for _, n := range networks {
		st.Networks = append(st.Networks, NetworkStat{Name: n.Name, Driver: n.Driver})
	}
	sort.Slice(st.Networks, func(i, j int) bool { return st.Networks[i].Name < st.Networks[j].Name })

	return st, nil
}

// containerName strips the leading slash the engine puts on names and falls
// back to a short ID.
func containerName(names []string, id string) string {
	if len(names) > 0 {
		return strings.TrimPrefix(names[0], "/")
	}
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
