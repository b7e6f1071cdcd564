package completions

import (
	"fmt"
	"strings"
)

// funcName turns a tool name into a shell identifier.
func funcName(tool string) string {
	return strings.NewReplacer("-", "_", ".", "_").Replace(tool)
}

// bash needs the colon handling from bash-completion, since ':' is in
// COMP_WORDBREAKS by default.
func bash(tool string, entries []Entry) string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	fn := funcName(tool)

	var b strings.Builder
	fmt.Fprintf(&b, "# bash completion for %s\n", tool)
	fmt.Fprintf(&b, "_%s_completions() {\n", fn)
	b.WriteString("    local cur\n")
	b.WriteString("    if declare -F _get_comp_words_by_ref >/dev/null 2>&1; then\n")
	b.WriteString("        _get_comp_words_by_ref -n : cur\n")
	b.WriteString("    else\n")
	b.WriteString("        cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    fi\n")
	b.WriteString("    if [ \"$COMP_CWORD\" -ne 1 ]; then\n")
	b.WriteString("        COMPREPLY=()\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	fmt.Fprintf(&b, "    COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(names, " "))
	b.WriteString("    if declare -F __ltrim_colon_completions >/dev/null 2>&1; then\n")
	b.WriteString("        __ltrim_colon_completions \"$cur\"\n")
	b.WriteString("    fi\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -F _%s_completions %s\n", fn, tool)
	return b.String()
}

func zsh(tool string, entries []Entry) string {
	fn := funcName(tool)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", tool)
	fmt.Fprintf(&b, "_%s() {\n", fn)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "        '%s:%s'\n", zshEscape(strings.ReplaceAll(e.Name, ":", `\:`)), zshEscape(e.Summary))
	}
	b.WriteString("    )\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe -t commands 'command' commands\n")
	b.WriteString("    else\n")
	b.WriteString("        _files\n")
	b.WriteString("    fi\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "compdef _%s %s\n", fn, tool)
	return b.String()
}

func fish(tool string, entries []Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# fish completion for %s\n", tool)
	fmt.Fprintf(&b, "complete -c %s -f\n", tool)
	for _, e := range entries {
		fmt.Fprintf(&b, "complete -c %s -n __fish_use_subcommand -a '%s' -d '%s'\n", tool, fishEscape(e.Name), fishEscape(e.Summary))
	}
	return b.String()
}

// zshEscape closes and reopens the single-quoted string around quotes.
func zshEscape(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

func fishEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}
