package outputproviders

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/stellarsec/netscope/internal/message"
	"github.com/stellarsec/netscope/modules"
	o "github.com/stellarsec/netscope/modules/options"
)

type JsonFileProvider struct {
	OutputPath string
}

func NewJsonFileProvider(options []*o.Option) modules.OutputProvider {
	return &JsonFileProvider{
		OutputPath: o.GetOptionByName(o.OutputOpt.Name, options).Value,
	}
}

// Write persists the result as pretty-printed JSON. An existing file is
// never rewritten; the skip is reported and the file left untouched.
func (fp *JsonFileProvider) Write(result modules.Result) error {
	filename := result.Filename
	if filename == "" {
		filename = DefaultFileName(result.Module)
	}
	fullpath := GetFullPath(filename, fp.OutputPath)
	dir := filepath.Dir(fullpath)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(fullpath); err == nil {
		message.Warning("File %s already exists.", fullpath)
		return nil
	}

	file, err := os.Create(fullpath)
	if err != nil {
		return err
	}
	defer file.Close()
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(result.Data)
	if err != nil {
		return err
	}

	message.Success("Output written to %s", fullpath)

	return nil
}
