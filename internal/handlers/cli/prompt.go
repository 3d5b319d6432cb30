package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/csouza/aliasmgr/internal/core/ports"
)

// HuhPrompter asks yes/no questions on the terminal. A failed prompt
// counts as a declined one.
type HuhPrompter struct {
	log *zap.SugaredLogger
}

var _ ports.Prompter = (*HuhPrompter)(nil)

func NewHuhPrompter(log *zap.SugaredLogger) *HuhPrompter {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &HuhPrompter{log: log}
}

func (p *HuhPrompter) ConfirmOverwriteAlias(name string) bool {
	return p.confirm(fmt.Sprintf("Alias '%s' already exists. Overwrite it?", name))
}

func (p *HuhPrompter) ConfirmCreateGroup(name string) bool {
	return p.confirm(fmt.Sprintf("Group '%s' does not exist. Create it?", name))
}

func (p *HuhPrompter) ConfirmMissingConfigFile(path string) bool {
	return p.confirm(fmt.Sprintf("Configuration file '%s' does not exist. Use this path anyway?", path))
}

func (p *HuhPrompter) confirm(title string) bool {
	var answer bool
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&answer),
	)).Run()
	if err != nil {
		p.log.Warnf("confirmation prompt failed: %v", err)
		return false
	}
	return answer
}
