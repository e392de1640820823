package gcp

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRegion(t *testing.T) {
	tests := []struct {
		name   string
		region string
		want   bool
	}{
		{name: "exact member", region: "us-central1", want: true},
		{name: "unknown region", region: "moon-base1", want: false},
		{name: "prefix does not match", region: "us-central", want: false},
		{name: "zone does not match", region: "us-central1-a", want: false},
	}

	fake := newFakeCompute()
	service := newTestService(t, fake)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := CheckRegion(context.Background(), service, "demo-proj", tt.region)
			require.NoError(t, err)
			assert.Equal(t, tt.want, valid)
		})
	}
}

func TestCheckRegionListFailure(t *testing.T) {
	fake := newFakeCompute()
	fake.fail["/regions"] = http.StatusInternalServerError
	service := newTestService(t, fake)

	_, err := CheckRegion(context.Background(), service, "demo-proj", "us-central1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list regions in project demo-proj")
}
