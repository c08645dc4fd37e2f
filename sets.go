package main

import (
	"fmt"
	"sort"
	"strings"
)

// resolveSets expands a -sets selection into concrete set codes. The
// selection is a block name from the config, "all" for every configured
// block, or a comma-separated list of raw set codes.
func resolveSets(cfg *Config, selection string) ([]string, error) {
	selection = strings.ToLower(strings.TrimSpace(selection))
	if selection == "" {
		return nil, fmt.Errorf("no sets selected: pass -sets <block|all|codes> (blocks: %s)", blockNames(cfg))
	}

	if selection == "all" {
		names := make([]string, 0, len(cfg.Blocks))
		for name := range cfg.Blocks {
			names = append(names, name)
		}
		sort.Strings(names)

		var codes []string
		for _, name := range names {
			codes = append(codes, cfg.Blocks[name]...)
		}
		return codes, nil
	}

	if codes, ok := cfg.Blocks[selection]; ok {
		return append([]string(nil), codes...), nil
	}

	// Not a block name: treat as comma-separated set codes.
	var codes []string
	for _, code := range strings.Split(selection, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if len(code) < 3 || len(code) > 5 {
			return nil, fmt.Errorf("invalid set code %q (blocks: %s)", code, blockNames(cfg))
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("no sets selected: pass -sets <block|all|codes> (blocks: %s)", blockNames(cfg))
	}
	return codes, nil
}

// blockNames returns the configured block names for error messages.
func blockNames(cfg *Config) string {
	names := make([]string, 0, len(cfg.Blocks))
	for name := range cfg.Blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
