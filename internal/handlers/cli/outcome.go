package cli

import (
	"fmt"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/services/aliasops"
)

// runConfigOp performs one load, mutate, save cycle: it loads the
// configuration, applies the operation, then honors the outcome's
// effect class. The outcome is returned so commands can word their
// feedback.
func (a *App) runConfigOp(op func(cfg *alias.Config) (aliasops.Outcome, error)) (aliasops.Outcome, error) {
	cfg, err := a.Repo.Load()
	if err != nil {
		return aliasops.NoChanges(), err
	}
	out, err := op(cfg)
	if err != nil {
		return aliasops.NoChanges(), err
	}
	return out, a.applyOutcome(cfg, out)
}

// applyOutcome persists and notifies according to the effect class:
// Command saves the configuration and forwards the script to the shell,
// ConfigChanged saves only, NoChanges does neither.
func (a *App) applyOutcome(cfg *alias.Config, out aliasops.Outcome) error {
	switch out.Kind {
	case aliasops.KindNoChanges:
		a.Log.Debug("no changes to apply")
		return nil
	case aliasops.KindConfigChanged:
		return a.Repo.Save(cfg)
	case aliasops.KindCommand:
		if err := a.Repo.Save(cfg); err != nil {
			return err
		}
		return a.Notifier.Send(out.Script)
	default:
		return fmt.Errorf("unknown outcome kind %d", out.Kind)
	}
}
