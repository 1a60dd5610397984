// Package codes turns free-form ticker input into a clean symbol list.
package codes

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Suffix is appended to bare 4-digit codes (Tokyo Stock Exchange on Yahoo).
const Suffix = ".T"

// Parse splits text on commas/newlines, trims, drops empties, qualifies bare
// 4-digit codes with Suffix and passes every other token through verbatim.
// The result is deduplicated and sorted. Malformed tokens are not an error;
// they just won't fetch.
func Parse(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, ",", "\n"), "\n")
	seen := map[string]struct{}{}
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if isBareCode(r) {
			r += Suffix
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

func isBareCode(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Code strips the exchange suffix back off a qualified symbol.
func Code(sym string) string {
	return strings.TrimSuffix(sym, Suffix)
}

// LoadFile reads codes from a YAML file. Two shapes are accepted:
// a "codes" list, or a plain multi-line scalar in the Parse format.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc struct {
		Codes []string `yaml:"codes"`
	}
	if err := yaml.Unmarshal(data, &doc); err == nil && doc.Codes != nil {
		return Parse(strings.Join(doc.Codes, "\n")), nil
	}

	// Plain text fallback: same comma/newline format as inline input.
	return Parse(string(data)), nil
}
