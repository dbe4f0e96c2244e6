package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/item-api/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID requires a positive store-assigned identifier.
	FieldID = "id"

	// FieldName limits the item name to MaxNameLength characters.
	FieldName = "name"

	// FieldCompany limits the company to MaxCompanyLength characters.
	FieldCompany = "company"

	// FieldRemarks limits the remarks to MaxRemarksLength characters.
	FieldRemarks = "remarks"
)

// Column limits of the item table, counted in characters.
const (
	MaxNameLength    = 200
	MaxCompanyLength = 200
	MaxRemarksLength = 500
)

// CreateFields are checked before an insert; the ID is assigned by the store.
var CreateFields = []string{FieldName, FieldCompany, FieldRemarks}

// UpdateFields are checked before an update.
var UpdateFields = []string{FieldID, FieldName, FieldCompany, FieldRemarks}

type ItemValidator struct{}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate checks a models.Item (or pointer). With no fields given, every
// field rule is applied.
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateItem(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateItem(_ context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = UpdateFields
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if item.ID <= 0 {
				return ErrInvalidItemID
			}
		case FieldName:
			if utf8.RuneCountInString(item.Name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldCompany:
			if utf8.RuneCountInString(item.Company) > MaxCompanyLength {
				return ErrCompanyTooLong
			}
		case FieldRemarks:
			if utf8.RuneCountInString(item.Remarks) > MaxRemarksLength {
				return ErrRemarksTooLong
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
