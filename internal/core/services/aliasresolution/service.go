/*
Package aliasresolution wraps the core operations with bounded,
single-retry recovery of the two conflicts a user can resolve
interactively: an alias-name collision (overwrite?) and a missing group
(create it?). Every other failure propagates unchanged. An operation
either succeeds after at most one retry per failure mode or its error
surfaces; there are no recovery loops.
*/
package aliasresolution

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/domain/shell"
	"github.com/csouza/aliasmgr/internal/core/ports"
	"github.com/csouza/aliasmgr/internal/core/services/aliasops"
)

type service struct {
	prompter ports.Prompter
	shell    shell.Type
	log      *zap.SugaredLogger
}

// NewService creates a resolution service for the given shell dialect.
// It panics if the prompter is nil.
func NewService(prompter ports.Prompter, sh shell.Type, log *zap.SugaredLogger) ports.AliasResolutionService {
	if prompter == nil {
		panic("prompter cannot be nil")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &service{prompter: prompter, shell: sh, log: log}
}

// AddAlias inserts a new alias, recovering a name collision by asking
// to overwrite and a missing group by asking to create it.
func (s *service) AddAlias(cfg *alias.Config, name string, a alias.Alias) (aliasops.Outcome, error) {
	out, err := aliasops.AddAlias(cfg, name, a, s.shell)
	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, aliasops.ErrAliasAlreadyExists):
		return s.overwriteAlias(cfg, name, a)
	case errors.Is(err, aliasops.ErrGroupDoesNotExist):
		return s.createGroupAndRetry(cfg, a.Group, func() (aliasops.Outcome, error) {
			return aliasops.AddAlias(cfg, name, a, s.shell)
		})
	default:
		return out, err
	}
}

// overwriteAlias replaces an existing alias after confirmation. When
// the target group differs from the existing one the alias is moved
// first, recovering a missing group through the usual create-and-retry
// path, then the remaining fields are overwritten wholesale.
func (s *service) overwriteAlias(cfg *alias.Config, name string, a alias.Alias) (aliasops.Outcome, error) {
	if !s.prompter.ConfirmOverwriteAlias(name) {
		s.log.Infof("alias %q was not modified", name)
		return aliasops.NoChanges(), nil
	}

	moved := aliasops.NoChanges()
	existing, _ := cfg.Aliases.Get(name)
	if existing.Group != a.Group {
		s.log.Infof("moving alias %q to group %q", name, a.Group)
		out, err := s.MoveAlias(cfg, name, a.Group)
		if err != nil {
			return aliasops.NoChanges(), err
		}
		if out.Kind == aliasops.KindNoChanges {
			// Group creation was declined; the overwrite is abandoned.
			return out, nil
		}
		moved = out
	}

	edited, err := aliasops.EditAlias(cfg, name, a, s.shell)
	if err != nil {
		return aliasops.NoChanges(), err
	}
	s.log.Infof("overwrote alias %q", name)
	// The move's outcome must survive even when the edit itself is a
	// no-op, or a group-only overwrite would never be persisted.
	return aliasops.Merge(moved, edited), nil
}

// AddGroup inserts a new group.
func (s *service) AddGroup(cfg *alias.Config, name string, enabled bool) (aliasops.Outcome, error) {
	return aliasops.AddGroup(cfg, name, enabled)
}

// EditAlias replaces an alias wholesale. Missing groups are not
// recovered here; callers go through AddAlias or MoveAlias for that.
func (s *service) EditAlias(cfg *alias.Config, name string, a alias.Alias) (aliasops.Outcome, error) {
	return aliasops.EditAlias(cfg, name, a, s.shell)
}

// MoveAlias reassigns an alias to a group, asking to create the group
// when it does not exist.
func (s *service) MoveAlias(cfg *alias.Config, name, newGroup string) (aliasops.Outcome, error) {
	out, err := aliasops.MoveAlias(cfg, name, newGroup)
	if errors.Is(err, aliasops.ErrGroupDoesNotExist) {
		return s.createGroupAndRetry(cfg, newGroup, func() (aliasops.Outcome, error) {
			return aliasops.MoveAlias(cfg, name, newGroup)
		})
	}
	return out, err
}

// createGroupAndRetry asks to create the missing group and retries the
// failed operation exactly once. A decline yields NoChanges; a failure
// of the creation itself, or of the retry, is a programming error and
// surfaces.
func (s *service) createGroupAndRetry(cfg *alias.Config, group string, retry func() (aliasops.Outcome, error)) (aliasops.Outcome, error) {
	if group == "" {
		return aliasops.NoChanges(), fmt.Errorf("missing-group recovery without a group name")
	}
	if !s.prompter.ConfirmCreateGroup(group) {
		s.log.Infof("group %q was not created", group)
		return aliasops.NoChanges(), nil
	}

	created, err := aliasops.AddGroup(cfg, group, true)
	if err != nil {
		return aliasops.NoChanges(), fmt.Errorf("creating group %q: %w", group, err)
	}
	out, err := retry()
	if err != nil {
		return aliasops.NoChanges(), fmt.Errorf("retrying after creating group %q: %w", group, err)
	}
	return aliasops.Merge(created, out), nil
}

// RemoveAliases deletes the named aliases.
func (s *service) RemoveAliases(cfg *alias.Config, names []string) (aliasops.Outcome, error) {
	return aliasops.RemoveAliases(cfg, names, s.shell)
}

// RemoveGroup deletes a group. Its member aliases are removed with it
// unless keepAliases is set, in which case they are reassigned to the
// ungrouped set.
func (s *service) RemoveGroup(cfg *alias.Config, name string, keepAliases bool) (aliasops.Outcome, error) {
	members, err := aliasops.AliasesInGroup(cfg, name)
	if err != nil {
		return aliasops.NoChanges(), err
	}

	// Members go first so visibility is judged while the group's
	// enabled flag still exists; a disabled group's members were never
	// shell-visible and must not produce unalias statements.
	out := aliasops.NoChanges()
	if keepAliases {
		for _, member := range members {
			moved, err := aliasops.MoveAlias(cfg, member, "")
			if err != nil {
				return aliasops.NoChanges(), fmt.Errorf("ungrouping alias %q: %w", member, err)
			}
			out = aliasops.Merge(out, moved)
		}
	} else {
		removed, err := aliasops.RemoveAliases(cfg, members, s.shell)
		if err != nil {
			return aliasops.NoChanges(), err
		}
		out = removed
	}

	dropped, err := aliasops.RemoveGroup(cfg, name)
	if err != nil {
		return aliasops.NoChanges(), err
	}
	return aliasops.Merge(out, dropped), nil
}

// RemoveAll clears the whole configuration.
func (s *service) RemoveAll(cfg *alias.Config) (aliasops.Outcome, error) {
	return aliasops.RemoveAll(cfg, s.shell)
}

// RenameAlias renames an alias, preserving every field.
func (s *service) RenameAlias(cfg *alias.Config, oldName, newName string) (aliasops.Outcome, error) {
	return aliasops.RenameAlias(cfg, oldName, newName, s.shell)
}

// RenameGroup renames a group and repoints its members.
func (s *service) RenameGroup(cfg *alias.Config, oldName, newName string) (aliasops.Outcome, error) {
	return aliasops.RenameGroup(cfg, oldName, newName)
}

// EnableAlias turns an alias on.
func (s *service) EnableAlias(cfg *alias.Config, name string) (aliasops.Outcome, error) {
	return aliasops.EnableAlias(cfg, name, s.shell)
}

// DisableAlias turns an alias off.
func (s *service) DisableAlias(cfg *alias.Config, name string) (aliasops.Outcome, error) {
	return aliasops.DisableAlias(cfg, name, s.shell)
}

// EnableGroup turns a group on.
func (s *service) EnableGroup(cfg *alias.Config, name string) (aliasops.Outcome, error) {
	return aliasops.EnableGroup(cfg, name, s.shell)
}

// DisableGroup turns a group off.
func (s *service) DisableGroup(cfg *alias.Config, name string) (aliasops.Outcome, error) {
	return aliasops.DisableGroup(cfg, name, s.shell)
}

// SortAllAliases reorders every alias by name.
func (s *service) SortAllAliases(cfg *alias.Config) (aliasops.Outcome, error) {
	return aliasops.SortAllAliases(cfg)
}

// SortAliasesInGroup reorders the aliases inside one group scope.
func (s *service) SortAliasesInGroup(cfg *alias.Config, group string) (aliasops.Outcome, error) {
	return aliasops.SortAliasesInGroup(cfg, group)
}

// SortGroups reorders every group by name.
func (s *service) SortGroups(cfg *alias.Config) (aliasops.Outcome, error) {
	return aliasops.SortGroups(cfg)
}

// ImportAliases adds every pack entry through the same collision and
// missing-group recovery as a manual add, merging the outcomes. The
// first hard failure aborts the import.
func (s *service) ImportAliases(cfg *alias.Config, entries []alias.PackEntry) (aliasops.Outcome, error) {
	out := aliasops.NoChanges()
	for _, e := range entries {
		a := alias.New(e.Command, e.Group, !e.Disabled, e.Global)
		added, err := s.AddAlias(cfg, e.Name, a)
		if err != nil {
			return aliasops.NoChanges(), fmt.Errorf("importing alias %q: %w", e.Name, err)
		}
		out = aliasops.Merge(out, added)
	}
	return out, nil
}

// Sync produces the full resync script as a Command outcome.
func (s *service) Sync(cfg *alias.Config) (aliasops.Outcome, error) {
	return aliasops.Command(aliasops.GenerateAliasScript(cfg, s.shell)), nil
}
