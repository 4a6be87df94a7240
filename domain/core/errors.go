package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrEmptyDataset = errors.New("dataset has no data rows")
	ErrEmptyGroup   = errors.New("no values in group")
	ErrColumnAbsent = errors.New("column absent from schema")
)

// NewColumnAbsentError names the missing column
func NewColumnAbsentError(column string) error {
	return fmt.Errorf("%w: %q", ErrColumnAbsent, column)
}

// IsEmptyDataset reports whether err stems from a dataset without rows
func IsEmptyDataset(err error) bool {
	return errors.Is(err, ErrEmptyDataset)
}
