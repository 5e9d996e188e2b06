package earnings

import "errors"

var (
	ErrStatementRender = errors.New("earnings statement render failed")
	ErrBatchRead       = errors.New("earnings batch could not be read")
	ErrBatchEmpty      = errors.New("earnings batch has no rows")
	ErrBatchTooLarge   = errors.New("earnings batch has too many rows")
)
