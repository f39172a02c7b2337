package colors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexForName(t *testing.T) {
	assert.Equal(t, "#000080", HexForName("Navy Blue"))
	assert.Equal(t, "#000080", HexForName("  navy blue  "))
	assert.Equal(t, "#FFFFFF", HexForName("WHITE"))
	assert.Equal(t, "#800020", HexForName("burgundy"))
}

func TestHexForNameIrregularInputsAgree(t *testing.T) {
	// Irregular casing and internal whitespace still land on the same hex.
	assert.Equal(t, HexForName("Navy Blue"), HexForName("navy  blue"))
	assert.Equal(t, "#000080", HexForName("navy  blue"))
	assert.Equal(t, "#000080", HexForName("navy\tblue"))
	assert.Equal(t, "#6B8E23", HexForName("olive   green"))
}

func TestHexForNameSubstring(t *testing.T) {
	// Longest table entry contained in the input wins.
	assert.Equal(t, "#000080", HexForName("dark navy blue shade"))
	assert.Equal(t, "#6B8E23", HexForName("light olive green"))
	assert.Equal(t, "#808000", HexForName("dusty olive"))
}

func TestHexForNameFallback(t *testing.T) {
	assert.Equal(t, FallbackHex, HexForName("nonexistent-color-xyz"))
	assert.Equal(t, FallbackHex, HexForName(""))
	assert.Equal(t, FallbackHex, HexForName("   "))
}

func TestNameForHex(t *testing.T) {
	assert.Equal(t, "Navy", NameForHex("#000080"))
	assert.Equal(t, "White", NameForHex("#ffffff"))
	// Unknown hex passes through unchanged.
	assert.Equal(t, "#123456", NameForHex("#123456"))
	assert.Equal(t, "not-a-hex", NameForHex("not-a-hex"))
}

func TestRoundTripNeverEmpty(t *testing.T) {
	for name := range nameToHex {
		got := NameForHex(HexForName(name))
		assert.NotEmptyf(t, got, "round trip for %q", name)
		// Many-to-one names mean the round trip need not return the original,
		// but it must resolve to some known name, not a hex code.
		assert.Falsef(t, strings.HasPrefix(got, "#"), "round trip for %q returned raw hex %q", name, got)
	}
}
