package outputproviders

import (
	"os"
	"strings"
)

// GetFullPath constructs the full file path from filename and output path
func GetFullPath(filename string, outputPath string) string {
	return outputPath + string(os.PathSeparator) + filename
}

// DefaultFileName derives a file name from a module name.
func DefaultFileName(module string) string {
	return strings.ToLower(strings.ReplaceAll(module, " ", "_")) + ".json"
}
