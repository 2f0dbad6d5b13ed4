package pixedit

import "errors"

// Common errors for editing operations.
var (
	// ErrInvalidDimension is returned when width or height is non-positive.
	ErrInvalidDimension = errors.New("pixedit: invalid dimension")

	// ErrInvalidBrushSize is returned when a brush size is not one of BrushSizes.
	ErrInvalidBrushSize = errors.New("pixedit: invalid brush size")

	// ErrInvalidColor is returned by ParseHexStrict for malformed colour strings.
	ErrInvalidColor = errors.New("pixedit: invalid color")

	// ErrUnknownTool is returned by ParseTool for unrecognized tool names.
	ErrUnknownTool = errors.New("pixedit: unknown tool")
)
