package modules

import (
	"github.com/stellarsec/netscope/modules/options"
)

type OpsecLevel string

const (
	Stealth  OpsecLevel = "stealth"
	Moderate OpsecLevel = "moderate"
	None     OpsecLevel = "none"
)

type Platform string

const (
	GCP       Platform = "gcp"
	Universal Platform = "universal"
)

type Metadata struct {
	Id          string
	Name        string
	Description string
	Platform    Platform
	Authors     []string
	References  []string
	OpsecLevel  OpsecLevel
}

type Module interface {
	Invoke() error
	GetOutputProviders() []OutputProvider
}

// Run carries the results of a module invocation to the output providers.
type Run struct {
	Data chan Result
}

func NewRun() Run {
	return Run{Data: make(chan Result)}
}

// OutputProvider consumes results produced by a module run.
type OutputProvider interface {
	Write(result Result) error
}

// RenderOutputProviders instantiates each provider constructor with the
// resolved module options.
func RenderOutputProviders(constructors []func(options []*options.Option) OutputProvider, opts []*options.Option) []OutputProvider {
	providers := make([]OutputProvider, 0, len(constructors))
	for _, constructor := range constructors {
		providers = append(providers, constructor(opts))
	}
	return providers
}

type BaseModule struct {
	Metadata
	Options         []*options.Option
	OutputProviders []OutputProvider
	Run             Run
}

func (m *BaseModule) GetOutputProviders() []OutputProvider {
	return m.OutputProviders
}

func (m *BaseModule) GetOptionByName(name string) *options.Option {
	return options.GetOptionByName(name, m.Options)
}

func (m *BaseModule) MakeResult(data interface{}, opts ...ResultOption) Result {
	return NewResult(m.Platform, m.Name, data, opts...)
}
