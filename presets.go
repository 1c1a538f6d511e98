package filmphoto

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// builtinPresets maps case-folded names to parameter sets.
var builtinPresets = map[string]Params{
	"auto":     AutoPreset,
	"identity": DefaultParams(),
}

// Preset returns the built-in parameter set with the given name.
// Names are matched case-insensitively.
func Preset(name string) (Params, bool) {
	p, ok := builtinPresets[PresetKey(name)]
	return p, ok
}

// PresetNames returns the names of the built-in presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(builtinPresets))
	for name := range builtinPresets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PresetKey normalizes a preset name for lookup: surrounding space is
// trimmed and the name is Unicode case-folded.
func PresetKey(name string) string {
	// A Caser is stateful, so each call gets its own.
	return cases.Fold().String(strings.TrimSpace(name))
}
