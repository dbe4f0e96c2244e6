package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidItemID  = errors.New("invalid item ID")
	ErrNameTooLong    = errors.New("name is too long")
	ErrCompanyTooLong = errors.New("company is too long")
	ErrRemarksTooLong = errors.New("remarks is too long")
)
