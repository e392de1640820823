package recongcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/compute/v1"

	"github.com/stellarsec/netscope/internal/gcp"
	"github.com/stellarsec/netscope/internal/message"
	op "github.com/stellarsec/netscope/internal/output_providers"
	"github.com/stellarsec/netscope/modules"
	o "github.com/stellarsec/netscope/modules/options"
)

// ErrInvalidRegion aborts the whole batch on the first region that is not a
// member of its project's region listing. Pairs queued after it are never
// attempted.
var ErrInvalidRegion = errors.New("invalid region")

type NetworkInfo struct {
	modules.BaseModule

	// Service overrides the default client construction, for tests.
	Service *compute.Service
}

var NetworkInfoOptions = []*o.Option{
	&o.GcpProjectsOpt,
	&o.GcpRegionsOpt,
	&o.VerboseOpt,
	&o.GcpCredentialsFileOpt,
}

var NetworkInfoMetadata = modules.Metadata{
	Id:          "network-info",
	Name:        "Network Info",
	Description: "This module enumerates VPC networking resources (networks, subnetworks, routes, interconnects, VPN, routers) for a set of projects and regions and persists each collection as JSON.",
	Platform:    modules.GCP,
	Authors:     []string{"Stellarsec"},
	OpsecLevel:  modules.Moderate,
	References: []string{
		"https://cloud.google.com/compute/docs/reference/rest/v1",
	},
}

func NewNetworkInfo(options []*o.Option, run modules.Run) (modules.Module, error) {
	// The console echo precedes the file write for each entry.
	var providers []func(options []*o.Option) modules.OutputProvider
	if verbose := o.GetOptionByName(o.VerboseOpt.Name, options); verbose != nil && verbose.Value == "true" {
		providers = append(providers, op.NewConsoleProvider)
	}
	providers = append(providers, op.NewJsonFileProvider)

	m := &NetworkInfo{
		BaseModule: modules.BaseModule{
			Metadata:        NetworkInfoMetadata,
			Run:             run,
			Options:         options,
			OutputProviders: modules.RenderOutputProviders(providers, options),
		},
	}
	return m, nil
}

// Invoke walks the project x region product strictly in sequence. Each pair
// is validated against the project's region listing, collected, and emitted
// as one result per record entry.
func (m *NetworkInfo) Invoke() error {
	defer close(m.Run.Data)
	ctx := context.Background()

	projects := splitList(m.GetOptionByName(o.GcpProjectsOpt.Name).Value)
	regions := splitList(m.GetOptionByName(o.GcpRegionsOpt.Name).Value)

	service := m.Service
	if service == nil {
		credsFile := m.GetOptionByName(o.GcpCredentialsFileOpt.Name).Value
		var err error
		service, err = gcp.NewService(ctx, credsFile)
		if err != nil {
			return err
		}
	}

	for _, projectId := range projects {
		for _, region := range regions {
			valid, err := gcp.CheckRegion(ctx, service, projectId, region)
			if err != nil {
				return err
			}
			if !valid {
				message.Error("The region %s is not valid.", region)
				return fmt.Errorf("%w: %s", ErrInvalidRegion, region)
			}

			info, err := gcp.CollectNetworkInfo(ctx, service, projectId, region)
			if err != nil {
				return err
			}

			for _, entry := range info.Entries() {
				m.Run.Data <- m.MakeResult(entry.Value,
					modules.WithKey(entry.Key),
					modules.WithFilename(fmt.Sprintf("%s_%s_%s.json", projectId, region, entry.Key)),
				)
			}
		}
	}

	return nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
