// Package aliaspacks loads shareable alias packs from YAML files so
// whole sets of aliases can be imported in one command.
package aliaspacks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/ports"
)

// YAMLProvider implements PredefinedAliasProvider by reading pack
// entries from a YAML file.
type YAMLProvider struct {
	filePath string
}

var _ ports.PredefinedAliasProvider = (*YAMLProvider)(nil)

func NewYAMLProvider(filePath string) (*YAMLProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("alias pack file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetPredefinedAliases reads and parses the configured pack file. An
// empty file yields an empty list and no error; a missing file is an
// error, since the user named the file explicitly.
func (p *YAMLProvider) GetPredefinedAliases() ([]alias.PackEntry, error) {
	data, err := os.ReadFile(p.filePath)
	if err != nil {
		return nil, fmt.Errorf("reading alias pack file %s: %w", p.filePath, err)
	}

	entries := []alias.PackEntry{}
	if len(data) == 0 {
		return entries, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&entries); err != nil {
		// A file holding only comments decodes to no documents at all.
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		return nil, fmt.Errorf("parsing alias pack file %s: %w", p.filePath, err)
	}

	return entries, nil
}
