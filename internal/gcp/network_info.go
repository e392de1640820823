package gcp

import (
	"context"
	"fmt"

	"google.golang.org/api/compute/v1"
)

// NetworkInfo is the full networking inventory of one (project, region)
// pair. The field set is fixed; every field is populated on success.
type NetworkInfo struct {
	Project          string                          `json:"project"`
	Region           string                          `json:"region"`
	Vpcs             *compute.NetworkList            `json:"vpcs"`
	Subnetworks      *compute.SubnetworkList         `json:"subnetworks"`
	Routes           *compute.RouteList              `json:"routes"`
	Interconnects    *compute.InterconnectList       `json:"interconnects"`
	LanInterfaces    *compute.BackendServiceList     `json:"lan_interfaces"`
	VpnGateways      *compute.VpnGatewayList         `json:"vpn_gateways"`
	ExternalGateways *compute.ExternalVpnGatewayList `json:"external_gateways"`
	VpnTunnels       *compute.VpnTunnelList          `json:"vpn_tunnels"`
	Routers          *compute.RouterList             `json:"routers"`
}

// Entry is one keyed element of a NetworkInfo record.
type Entry struct {
	Key   string
	Value interface{}
}

// Entries returns the record's elements in their fixed order, the scalar
// project and region entries first.
func (n *NetworkInfo) Entries() []Entry {
	return []Entry{
		{Key: "project", Value: n.Project},
		{Key: "region", Value: n.Region},
		{Key: "vpcs", Value: n.Vpcs},
		{Key: "subnetworks", Value: n.Subnetworks},
		{Key: "routes", Value: n.Routes},
		{Key: "interconnects", Value: n.Interconnects},
		{Key: "lan_interfaces", Value: n.LanInterfaces},
		{Key: "vpn_gateways", Value: n.VpnGateways},
		{Key: "external_gateways", Value: n.ExternalGateways},
		{Key: "vpn_tunnels", Value: n.VpnTunnels},
		{Key: "routers", Value: n.Routers},
	}
}

// CollectNetworkInfo issues the networking list calls for one validated
// (project, region) pair, strictly in sequence. Global resources are scoped
// to the project, regional resources to the pair. The first failing call
// aborts the collection.
func CollectNetworkInfo(ctx context.Context, service *compute.Service, projectId, region string) (*NetworkInfo, error) {
	vpcs, err := service.Networks.List(projectId).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list networks in project %s: %w", projectId, err)
	}

	subnetworks, err := service.Subnetworks.List(projectId, region).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list subnetworks in %s/%s: %w", projectId, region, err)
	}

	routes, err := service.Routes.List(projectId).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list routes in project %s: %w", projectId, err)
	}

	interconnects, err := service.Interconnects.List(projectId).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list interconnects in project %s: %w", projectId, err)
	}

	lanInterfaces, err := service.RegionBackendServices.List(projectId, region).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list region backend services in %s/%s: %w", projectId, region, err)
	}

	vpnGateways, err := service.VpnGateways.List(projectId, region).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list VPN gateways in %s/%s: %w", projectId, region, err)
	}

	externalGateways, err := service.ExternalVpnGateways.List(projectId).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list external VPN gateways in project %s: %w", projectId, err)
	}

	vpnTunnels, err := service.VpnTunnels.List(projectId, region).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list VPN tunnels in %s/%s: %w", projectId, region, err)
	}

	routers, err := service.Routers.List(projectId, region).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list routers in %s/%s: %w", projectId, region, err)
	}

	return &NetworkInfo{
		Project:          projectId,
		Region:           region,
		Vpcs:             vpcs,
		Subnetworks:      subnetworks,
		Routes:           routes,
		Interconnects:    interconnects,
		LanInterfaces:    lanInterfaces,
		VpnGateways:      vpnGateways,
		ExternalGateways: externalGateways,
		VpnTunnels:       vpnTunnels,
		Routers:          routers,
	}, nil
}
