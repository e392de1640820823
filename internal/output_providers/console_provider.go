package outputproviders

import (
	"fmt"
	"io"
	"os"

	"github.com/stellarsec/netscope/modules"
	o "github.com/stellarsec/netscope/modules/options"
)

type ConsoleProvider struct {
	Out io.Writer
}

func NewConsoleProvider(options []*o.Option) modules.OutputProvider {
	return &ConsoleProvider{Out: os.Stdout}
}

// Write echoes the result's key and pretty-printed data to the console,
// followed by a delimiter line.
func (cp *ConsoleProvider) Write(result modules.Result) error {
	fmt.Fprintf(cp.Out, "%s:\n%s\n-----\n", result.Key, result.String())
	return nil
}
