package hip

import (
	"strconv"
	"strings"
)

// archPrefix starts the name of every AMD GPU architecture, e.g. "gfx90a".
const archPrefix = "gfx"

// ParseArchitecture converts an AMD architecture name (e.g. "gfx908" or "gfx90a:sramecc+:xnack-") into
// its numeric identifier (0x908 and 0x90a respectively). Feature suffixes after the first ":" are ignored.
//
// It returns 0 if the name is not a "gfx" architecture, if the remaining digits are not hexadecimal,
// if there are no digits at all, or if the value doesn't fit 64 bits.
func ParseArchitecture(name string) uint64 {
	if !strings.HasPrefix(name, archPrefix) {
		return 0
	}
	digits := name[len(archPrefix):]
	if colon := strings.IndexByte(digits, ':'); colon >= 0 {
		digits = digits[:colon]
	}
	if digits == "" {
		return 0
	}
	for _, r := range digits {
		if !isHexDigit(r) {
			return 0
		}
	}
	arch, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0
	}
	return arch
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
