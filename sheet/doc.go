// Package sheet composes directional animation frames into grid spritesheets.
//
// A spritesheet is a single RGBA image with one row per facing direction and
// one column per animation frame. The playback side indexes cells by
// (direction row, frame column), so the row order and the cell size are part
// of the contract with the consumer and must not change.
package sheet
