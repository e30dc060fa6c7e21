package genicon

import "errors"

// Sentinel errors for icon generation.
// Both are joined with the underlying filesystem error, so errors.Is also
// matches fs.ErrPermission, fs.ErrExist and friends.
var (
	ErrCreateDir = errors.New("failed to create icon directory")
	ErrWriteIcon = errors.New("failed to write icon file")
)
