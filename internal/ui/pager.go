// Package ui writes command output, optionally through a pager.
//
// The pager command comes from --pager, the pager config key or $PAGER, and
// is run like git or man do. Only configure pagers you trust.
package ui

import "strings"

// defaultPager is used when nothing else is configured.
var defaultPager = []string{"less", "-FRSX"}

type pagerChoice struct {
	value  string
	source string
}

// resolvePager picks the pager command. A nil command means print directly.
//
// Precedence:
//  1. --pager=<cmd>
//  2. pager config key
//  3. $PAGER
//  4. less -FRSX
//
// "cat" at any level bypasses paging.
func resolvePager(override string, configGetter func(string) (string, bool), envGetter func(string) string) ([]string, string) {
	choices := []pagerChoice{{override, "flag"}}
	if configGetter != nil {
		if v, ok := configGetter("pager"); ok {
			choices = append(choices, pagerChoice{v, "config"})
		}
	}
	if envGetter != nil {
		choices = append(choices, pagerChoice{envGetter("PAGER"), "env"})
	}

	for _, c := range choices {
		fields := strings.Fields(c.value)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "cat" {
			return nil, c.source
		}
		return fields, c.source
	}
	return defaultPager, "default"
}
