package platform

import "runtime"

// Modifiers is a bitmask of held modifier keys
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModShift
	ModMeta
)

// Has reports whether all bits of m are set
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}

// Any reports whether any bit of m is set
func (mods Modifiers) Any(m Modifiers) bool {
	return mods&m != 0
}

// OS is the platform the binary runs on. Tests override it.
var OS = runtime.GOOS

func IsMacOS() bool { return OS == "darwin" }

// PrimaryModifier is the modifier reserved for shortcuts: Meta on macOS, Ctrl elsewhere
func PrimaryModifier() Modifiers {
	if IsMacOS() {
		return ModMeta
	}
	return ModCtrl
}

// AltIsMeta reports whether terminals on this platform deliver Option as Meta
func AltIsMeta() bool {
	return IsMacOS()
}

// ModifierSymbol returns the label shown in key hints for the primary modifier
func ModifierSymbol() string {
	if !IsMacOS() {
		return "Ctrl"
	}
	return "⌘"
}
