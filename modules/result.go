package modules

import (
	"encoding/json"
)

type Result struct {
	Platform Platform    `json:"platform"`
	Module   string      `json:"module"`
	Key      string      `json:"key,omitempty"`
	Filename string      `json:"-"`
	Data     interface{} `json:"data"`
}

type ResultOption func(*Result)

func NewResult(platform Platform, module string, data interface{}, opts ...ResultOption) Result {
	r := &Result{
		Platform: platform,
		Module:   module,
		Data:     data,
	}

	for _, opt := range opts {
		opt(r)
	}
	return *r
}

// WithKey labels the result with the record key it was produced under.
func WithKey(key string) ResultOption {
	return func(r *Result) {
		r.Key = key
	}
}

func WithFilename(filename string) ResultOption {
	return func(r *Result) {
		r.Filename = filename
	}
}

func (r *Result) String() string {
	d, _ := json.MarshalIndent(r.Data, "", "  ")
	return string(d)
}

func (r *Result) Json() []byte {
	d, _ := json.Marshal(r)
	return d
}
