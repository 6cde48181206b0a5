package hip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArchitecture(t *testing.T) {
	for _, tc := range []struct {
		name string
		want uint64
	}{
		{"gfx908", 0x908},
		{"gfx90a:sramecc+:xnack-", 0x90a},
		{"gfx1100", 0x1100},
		{"gfx90A", 0x90a},
		{"notarch123", 0},
		{"", 0},
		{"gfx", 0},
		{"gfx:xnack+", 0},
		{"GFX908", 0},
		{"gfx90g", 0},
		{"gfx 908", 0},
		{"gfx+908", 0},
		{"gfx11111111111111111", 0}, // Overflows 64 bits.
		{"sm_80", 0},
	} {
		require.Equalf(t, tc.want, ParseArchitecture(tc.name), "ParseArchitecture(%q)", tc.name)
	}
}
