// Package colors maps human color names to display hex codes and back. Both
// lookups are total: an unknown name resolves to a neutral gray and an
// unknown hex passes through unchanged.
package colors

import (
	"sort"
	"strings"
)

// FallbackHex is returned for any name with no table entry.
const FallbackHex = "#808080"

var nameToHex = map[string]string{
	// Basics
	"white":  "#FFFFFF",
	"black":  "#000000",
	"red":    "#FF0000",
	"blue":   "#0000FF",
	"green":  "#008000",
	"yellow": "#FFFF00",
	"orange": "#FFA500",
	"purple": "#800080",
	"pink":   "#FFC0CB",
	"brown":  "#8B4513",
	"grey":   "#808080",
	"gray":   "#808080",
	"beige":  "#F5F5DC",
	"cream":  "#FFFDD0",
	"ivory":  "#FFFFF0",

	// Blues
	"navy blue":  "#000080",
	"navy":       "#000080",
	"sky blue":   "#87CEEB",
	"royal blue": "#4169E1",
	"teal":       "#008080",
	"turquoise":  "#40E0D0",
	"denim":      "#1560BD",

	// Reds and pinks
	"maroon":   "#800000",
	"burgundy": "#800020",
	"wine":     "#722F37",
	"crimson":  "#DC143C",
	"coral":    "#FF7F50",
	"magenta":  "#FF00FF",
	"hot pink": "#FF69B4",
	"rose":     "#FF007F",

	// Greens
	"olive":       "#808000",
	"olive green": "#6B8E23",
	"sage green":  "#BCB88A",
	"emerald":     "#50C878",
	"mint":        "#98FF98",
	"lime":        "#00FF00",

	// Yellows and golds
	"mustard":   "#FFDB58",
	"gold":      "#FFD700",
	"champagne": "#F7E7CE",
	"tan":       "#D2B48C",
	"camel":     "#C19A6B",

	// Purples
	"lavender": "#E6E6FA",
	"violet":   "#8F00FF",
	"plum":     "#DDA0DD",

	// Browns
	"chocolate":  "#D2691E",
	"coffee":     "#6F4E37",
	"cognac":     "#9A463D",
	"rust":       "#B7410E",
	"terracotta": "#E2725B",

	// Grays
	"charcoal": "#36454F",
	"silver":   "#C0C0C0",
	"slate":    "#708090",

	// Others
	"peach": "#FFE5B4",
	"nude":  "#E3BC9A",
	"khaki": "#F0E68C",
}

// sortedNames holds the table keys longest-first so substring matching is
// deterministic and prefers the most specific entry ("navy blue" over "navy",
// "olive green" over "olive").
var sortedNames = func() []string {
	names := make([]string, 0, len(nameToHex))
	for name := range nameToHex {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}()

// hexToName is the reverse table. Where several names share a hex, the
// lexicographically first name wins, so the reverse lookup is deterministic.
var hexToName = func() map[string]string {
	rev := make(map[string]string, len(nameToHex))
	names := make([]string, 0, len(nameToHex))
	for name := range nameToHex {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		hex := strings.ToUpper(nameToHex[name])
		if _, ok := rev[hex]; !ok {
			rev[hex] = name
		}
	}
	return rev
}()

// HexForName resolves a color name to its hex code. Matching is
// case-insensitive and whitespace-normalized (runs of internal whitespace
// collapse to one space); when no exact entry exists the longest table name
// contained in the input wins ("dark navy blue" resolves via "navy blue").
// Unknown names return FallbackHex.
func HexForName(name string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(name)), " ")
	if normalized == "" {
		return FallbackHex
	}
	if hex, ok := nameToHex[normalized]; ok {
		return hex
	}
	for _, candidate := range sortedNames {
		if strings.Contains(normalized, candidate) {
			return nameToHex[candidate]
		}
	}
	return FallbackHex
}

// NameForHex resolves a hex code back to a display name, title-cased. Input
// that doesn't look like a known hex is returned unchanged.
func NameForHex(hex string) string {
	trimmed := strings.TrimSpace(hex)
	if name, ok := hexToName[strings.ToUpper(trimmed)]; ok {
		return titleCase(name)
	}
	return hex
}

func titleCase(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
