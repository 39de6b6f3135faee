// Package nifti provides a pure Go implementation for reading and writing
// NIfTI-1 volumes.
package nifti

import (
	"errors"

	"github.com/robert-malhotra/go-nifti/internal/element"
	"github.com/robert-malhotra/go-nifti/internal/header"
)

// Common errors
var (
	ErrNotNIfTI        = header.ErrNotNIfTI
	ErrUnsupportedType = header.ErrUnsupportedType
	ErrBadDimensions   = header.ErrBadDimensions
	ErrTruncated       = element.ErrTruncated
	ErrShortData       = errors.New("volume data is shorter than the header declares")
	ErrHeaderOnly      = errors.New("header-only file: sample data lives in the companion .img")
)
