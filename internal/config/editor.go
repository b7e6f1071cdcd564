package config

import "strings"

// entryKey returns the key of a key=value line. Placeholder lines written
// for empty defaults ("# pager=") report their key with placeholder set.
func entryKey(line string) (key string, placeholder bool, ok bool) {
	trimmed := strings.TrimSpace(line)
	if rest, found := strings.CutPrefix(trimmed, "#"); found {
		k, v, hasEq := strings.Cut(strings.TrimSpace(rest), "=")
		if !hasEq || strings.TrimSpace(v) != "" || !isKey(strings.TrimSpace(k)) {
			return "", false, false
		}
		return strings.TrimSpace(k), true, true
	}
	k, _, hasEq := strings.Cut(trimmed, "=")
	if !hasEq || strings.TrimSpace(k) == "" {
		return "", false, false
	}
	return strings.TrimSpace(k), false, true
}

func isKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '_' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// formatEntry renders key=value, quoting values Parse would otherwise trim.
func formatEntry(key, value string) string {
	if value != strings.TrimSpace(value) || (strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) {
		value = `"` + value + `"`
	}
	return key + "=" + value
}

// Set assigns key in lines. An existing entry is replaced in place, a
// "# key=" placeholder is filled in, otherwise the entry is appended. The
// bool reports whether an active entry already existed.
func Set(lines []string, key, value string) ([]string, bool) {
	placeholderAt := -1
	for i, line := range lines {
		k, placeholder, ok := entryKey(line)
		if !ok || k != key {
			continue
		}
		if !placeholder {
			lines[i] = formatEntry(key, value)
			return lines, true
		}
		if placeholderAt < 0 {
			placeholderAt = i
		}
	}

	if placeholderAt >= 0 {
		lines[placeholderAt] = formatEntry(key, value)
		return lines, false
	}
	return append(lines, formatEntry(key, value)), false
}

// Unset removes every active entry for key. Placeholders and comments are
// left alone.
func Unset(lines []string, key string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	removed := false
	for _, line := range lines {
		if k, placeholder, ok := entryKey(line); ok && !placeholder && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}
	return out, removed
}
