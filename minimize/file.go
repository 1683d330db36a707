package minimize

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	tt "github.com/gnolang/qmc/internal/types"
)

// FunctionFile is the document format of function files. JSON documents
// are accepted as well.
type FunctionFile struct {
	Functions []tt.Function `yaml:"functions" json:"functions"`
}

var desiredExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}

// ParseFunctions decodes a function file.
func ParseFunctions(source []byte) ([]tt.Function, error) {
	var doc FunctionFile
	if err := yaml.Unmarshal(source, &doc); err != nil {
		return nil, fmt.Errorf("error parsing function file: %w", err)
	}
	for i := range doc.Functions {
		if doc.Functions[i].Name == "" {
			doc.Functions[i].Name = fmt.Sprintf("F%d", i)
		}
	}
	return doc.Functions, nil
}

// ReadFunctions reads and decodes the function file at path.
func ReadFunctions(path string) ([]tt.Function, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFunctions(source)
}
