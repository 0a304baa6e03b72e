// Package apperr defines the sentinel error kinds surfaced at the CLI boundary.
package apperr

import "errors"

var (
	ErrConfigNotFound   = errors.New("configuration not found")
	ErrConfigInvalid    = errors.New("configuration invalid")
	ErrVaultPathInvalid = errors.New("vault path invalid")
	ErrPathOutsideVault = errors.New("path outside vault")
	ErrAlreadyExists    = errors.New("already exists")
	ErrEmptyContent     = errors.New("empty content")
	ErrInvalidFormat    = errors.New("invalid format")
)
