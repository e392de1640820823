package recongcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/option"

	"github.com/stellarsec/netscope/internal/message"
	op "github.com/stellarsec/netscope/internal/output_providers"
	"github.com/stellarsec/netscope/modules"
	o "github.com/stellarsec/netscope/modules/options"
)

var recordKeys = []string{
	"project",
	"region",
	"vpcs",
	"subnetworks",
	"routes",
	"interconnects",
	"lan_interfaces",
	"vpn_gateways",
	"external_gateways",
	"vpn_tunnels",
	"routers",
}

// newFakeService serves empty first-page list responses for every compute
// endpoint the module touches, with the given region names in the region
// listing.
func newFakeService(t *testing.T, regionNames ...string) *compute.Service {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/regions") {
			regions := &compute.RegionList{}
			for _, name := range regionNames {
				regions.Items = append(regions.Items, &compute.Region{Name: name})
			}
			json.NewEncoder(w).Encode(regions)
			return
		}
		fmt.Fprint(w, `{"items":[]}`)
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	service, err := compute.NewService(ctx,
		option.WithEndpoint(server.URL),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return service
}

func newTestModule(t *testing.T, service *compute.Service, projects, regions string) (*NetworkInfo, modules.Run) {
	t.Helper()

	opts := o.CreateDeepCopyOfOptions(NetworkInfoOptions)
	o.GetOptionByName(o.GcpProjectsOpt.Name, opts).Value = projects
	o.GetOptionByName(o.GcpRegionsOpt.Name, opts).Value = regions

	run := modules.NewRun()
	m := &NetworkInfo{
		BaseModule: modules.BaseModule{
			Metadata: NetworkInfoMetadata,
			Run:      run,
			Options:  opts,
		},
		Service: service,
	}
	return m, run
}

func drain(run modules.Run) func() []modules.Result {
	var results []modules.Result
	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range run.Data {
			results = append(results, result)
		}
	}()
	return func() []modules.Result {
		<-done
		return results
	}
}

func TestNetworkInfoEmitsAllRecordKeys(t *testing.T) {
	service := newFakeService(t, "us-central1")
	m, run := newTestModule(t, service, "demo-proj", "us-central1")
	collect := drain(run)

	require.NoError(t, m.Invoke())
	results := collect()

	require.Len(t, results, len(recordKeys))
	for i, result := range results {
		assert.Equal(t, recordKeys[i], result.Key)
		assert.Equal(t, fmt.Sprintf("demo-proj_us-central1_%s.json", recordKeys[i]), result.Filename)
		assert.Equal(t, modules.GCP, result.Platform)
	}
}

func TestNetworkInfoCartesianPairs(t *testing.T) {
	service := newFakeService(t, "us-central1", "europe-west1")
	m, run := newTestModule(t, service, "proj-a,proj-b", "us-central1,europe-west1")
	collect := drain(run)

	require.NoError(t, m.Invoke())
	results := collect()

	// four pairs, one result per record key each
	require.Len(t, results, 4*len(recordKeys))
	assert.Equal(t, "proj-a_us-central1_project.json", results[0].Filename)
	assert.Equal(t, "proj-b_europe-west1_routers.json", results[len(results)-1].Filename)
}

func TestNetworkInfoInvalidRegionAbortsBatch(t *testing.T) {
	var console bytes.Buffer
	message.SetNoColor(true)
	message.SetOutput(&console)
	t.Cleanup(func() {
		message.SetNoColor(false)
		message.SetOutput(os.Stdout)
	})

	service := newFakeService(t, "us-central1")
	m, run := newTestModule(t, service, "demo-proj", "moon-base1,us-central1")
	collect := drain(run)

	err := m.Invoke()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRegion))

	// nothing is emitted for the invalid pair or anything queued after it
	assert.Empty(t, collect())
	assert.Contains(t, console.String(), "The region moon-base1 is not valid.")
}

func TestNewNetworkInfoProviderOrder(t *testing.T) {
	opts := o.CreateDeepCopyOfOptions(NetworkInfoOptions)
	o.GetOptionByName(o.GcpProjectsOpt.Name, opts).Value = "demo-proj"
	o.GetOptionByName(o.GcpRegionsOpt.Name, opts).Value = "us-central1"
	o.GetOptionByName(o.VerboseOpt.Name, opts).Value = "true"
	opts = append(opts, o.SetDefaultValue(o.OutputOpt, "output"))

	m, err := NewNetworkInfo(opts, modules.NewRun())
	require.NoError(t, err)

	providers := m.GetOutputProviders()
	require.Len(t, providers, 2)
	_, ok := providers[0].(*op.ConsoleProvider)
	assert.True(t, ok, "console echo must come before the file write")
	_, ok = providers[1].(*op.JsonFileProvider)
	assert.True(t, ok)
}

func TestNewNetworkInfoWithoutVerbose(t *testing.T) {
	opts := o.CreateDeepCopyOfOptions(NetworkInfoOptions)
	o.GetOptionByName(o.GcpProjectsOpt.Name, opts).Value = "demo-proj"
	o.GetOptionByName(o.GcpRegionsOpt.Name, opts).Value = "us-central1"
	opts = append(opts, o.SetDefaultValue(o.OutputOpt, "output"))

	m, err := NewNetworkInfo(opts, modules.NewRun())
	require.NoError(t, err)

	providers := m.GetOutputProviders()
	require.Len(t, providers, 1)
	_, ok := providers[0].(*op.JsonFileProvider)
	assert.True(t, ok)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"proj-a", "proj-b"}, splitList("proj-a, proj-b"))
	assert.Equal(t, []string{"demo-proj"}, splitList("demo-proj"))
}
