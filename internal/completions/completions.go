// Package completions generates shell completion scripts from the
// handler registry.
package completions

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/strongspace/cli/internal/command"
)

// Shell is a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// Entry is one completable command string.
type Entry struct {
	Name    string
	Summary string
}

// Entries lists every runnable command of r, sorted by name. Summaries
// come from the operation docs, or the type summary for index operations
// without their own.
func Entries(r *command.Registry) []Entry {
	var out []Entry
	var walk func(t *command.HandlerType)
	walk = func(t *command.HandlerType) {
		path := t.Path()
		for _, op := range t.Operations {
			e := Entry{Name: path + command.Separator + op.Name, Summary: op.Summary}
			if op.Name == command.DefaultOperation {
				e.Name = path
				if e.Summary == "" {
					e.Summary = t.Summary
				}
			}
			out = append(out, e)
		}
		for _, c := range t.Children() {
			walk(c)
		}
	}
	for _, t := range r.Types() {
		walk(t)
	}
	if fb := r.Fallback(); fb != nil {
		for _, op := range fb.Operations {
			out = append(out, Entry{Name: op.Name, Summary: op.Summary})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Script renders the completion script for shell.
func Script(shell Shell, tool string, entries []Entry) (string, error) {
	switch shell {
	case ShellBash:
		return bash(tool, entries), nil
	case ShellZsh:
		return zsh(tool, entries), nil
	case ShellFish:
		return fish(tool, entries), nil
	default:
		return "", fmt.Errorf("unsupported shell %q", shell)
	}
}

// DetectShell guesses the user's shell from a $SHELL value.
func DetectShell(shellPath string) (Shell, bool) {
	if shellPath == "" {
		return "", false
	}
	name := Shell(filepath.Base(shellPath))
	for _, s := range Shells {
		if s == name {
			return s, true
		}
	}
	return "", false
}
