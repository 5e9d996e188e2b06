package tax

import "errors"

var (
	ErrEmptyTable           = errors.New("tax table has no brackets")
	ErrBracketGap           = errors.New("tax brackets leave a gap")
	ErrBracketOverlap       = errors.New("tax brackets overlap")
	ErrBracketOrder         = errors.New("tax brackets out of order")
	ErrBracketRate          = errors.New("tax bracket rate outside [0,1]")
	ErrBracketUnbounded     = errors.New("only the final tax bracket may be unbounded")
	ErrJurisdictionCode     = errors.New("jurisdiction code must be two letters")
	ErrJurisdictionExists   = errors.New("jurisdiction registered twice")
	ErrJurisdictionNotFound = errors.New("jurisdiction not found")
)
