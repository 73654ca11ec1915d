package config

import (
	"strconv"

	"github.com/jmylchreest/glassyclock/internal/placement"
)

// IsHelp reports whether args ask for usage text.
func IsHelp(args []string) bool {
	return len(args) > 0 && (args[0] == "--help" || args[0] == "-h")
}

// ParseArgs applies positional arguments on top of base:
//
//	<size>
//	<size> <x> <y>
//	<size> <x> <y> <screen>
//
// Nothing is applied unless the size is an integer. The position is only
// applied when both coordinates are integers. Unparseable values are
// ignored without error.
func ParseArgs(args []string, base ClockConfig) ClockConfig {
	cfg := base
	if len(args) == 0 || IsHelp(args) {
		return cfg
	}

	size, err := strconv.Atoi(args[0])
	if err != nil {
		return cfg
	}
	cfg.Size = size

	if len(args) >= 3 {
		x, errX := strconv.Atoi(args[1])
		y, errY := strconv.Atoi(args[2])
		if errX == nil && errY == nil {
			cfg.Position = placement.Point{X: x, Y: y}
		}
	}
	if len(args) >= 4 {
		cfg.ScreenName = args[3]
	}

	return cfg
}
