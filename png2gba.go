/*
Package png2gba converts decoded images into C header files holding GBA
display data.

Pixels are walked either in row-major order or as 8 by 8 tiles and each
24-bit color is truncated to the 15-bit 5-5-5 format the hardware uses. In
indexed mode the colors are collected into a 16 or 256 entry palette with
index 0 reserved for the transparent colorkey and the pixel data becomes
palette indices; otherwise the packed colors are emitted directly.
*/
package png2gba

import "log"

// Converter performs image conversions. The logger receives progress
// information and is usually discarded unless running verbosely.
type Converter struct {
	logger *log.Logger
}

// New returns a Converter logging to logger.
func New(logger *log.Logger) *Converter {
	return &Converter{
		logger: logger,
	}
}
