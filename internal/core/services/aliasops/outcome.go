/*
Package aliasops implements the pure mutation operations on an alias
configuration. Every mutating operation reports one of three effect
classes, derived from whether the set of aliases visible in the live
shell actually changed: Command (persist and notify the shell),
ConfigChanged (persist only), NoChanges (neither). Over- or
under-reporting desynchronizes the live shell from the saved file.
*/
package aliasops

import "strings"

// OutcomeKind discriminates the three effect classes.
type OutcomeKind int

const (
	// KindNoChanges means neither the configuration nor the shell
	// changed.
	KindNoChanges OutcomeKind = iota

	// KindConfigChanged means the configuration must be persisted but
	// nothing shell-visible changed.
	KindConfigChanged

	// KindCommand means the configuration must be persisted and the
	// script forwarded to the live shell.
	KindCommand
)

// Outcome is the tagged result of a mutating operation. Script holds
// one or more newline-joined shell statements and is only meaningful
// when Kind is KindCommand.
type Outcome struct {
	Kind   OutcomeKind
	Script string
}

// NoChanges reports that nothing happened.
func NoChanges() Outcome {
	return Outcome{Kind: KindNoChanges}
}

// ConfigChanged reports a persist-only change.
func ConfigChanged() Outcome {
	return Outcome{Kind: KindConfigChanged}
}

// Command reports a shell-visible change carrying the statements the
// shell must evaluate.
func Command(script string) Outcome {
	return Outcome{Kind: KindCommand, Script: script}
}

// Merge combines the outcomes of two consecutive operations. Command
// scripts are newline-joined; otherwise the stronger classification
// wins.
func Merge(a, b Outcome) Outcome {
	if a.Kind == KindCommand || b.Kind == KindCommand {
		script := strings.Trim(a.Script+"\n"+b.Script, "\n")
		return Command(script)
	}
	if a.Kind == KindConfigChanged || b.Kind == KindConfigChanged {
		return ConfigChanged()
	}
	return NoChanges()
}
