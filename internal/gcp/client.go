package gcp

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
)

// NewService builds an authenticated Compute Engine API client. When no
// credentials file is given it relies on application default credentials,
// failing fast if none can be resolved.
func NewService(ctx context.Context, credsFile string) (*compute.Service, error) {
	var clientOptions []option.ClientOption
	if credsFile != "" {
		clientOptions = append(clientOptions, option.WithCredentialsFile(credsFile))
	} else {
		if _, err := google.FindDefaultCredentials(ctx, compute.ComputeScope); err != nil {
			return nil, fmt.Errorf("cannot find default credentials: %w", err)
		}
	}

	service, err := compute.NewService(ctx, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute service: %w", err)
	}
	return service, nil
}

// CheckRegion reports whether region is a literal member of the project's
// region listing. Only the first response page is considered.
func CheckRegion(ctx context.Context, service *compute.Service, projectId, region string) (bool, error) {
	regions, err := service.Regions.List(projectId).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("failed to list regions in project %s: %w", projectId, err)
	}

	for _, available := range regions.Items {
		if available.Name == region {
			return true, nil
		}
	}
	return false, nil
}
