package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-post-board/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldText targets the post or comment body.
	FieldText = "text"

	// FieldName targets the author display name captured on the input.
	FieldName = "name"

	// FieldAvatar targets the author avatar URL captured on the input.
	FieldAvatar = "avatar"
)

// Post and comment bodies share the same length contract.
const (
	textMinLen = 1
	textMaxLen = 300
)

// PostValidator implements the Validator interface for [models.PostInput],
// the body of both the create-post and add-comment operations. On failure it
// returns a [FieldErrors] map with one message per offending field.
//
// Both value and pointer forms are accepted, and optional field-level scoping
// is available via variadic field name arguments.
type PostValidator struct {
}

// NewPostValidator constructs a new PostValidator
// and returns it as the Validator interface.
func NewPostValidator() Validator {
	return &PostValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.PostInput / *models.PostInput
//
// Returns ErrUnsupportedType if obj does not match any known model, a
// [FieldErrors] map on validation failure, and nil when the input is valid.
// Optional fields restrict validation to the named subset; when omitted,
// every field is validated.
func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PostInput:
		return v.validatePostInput(value, fields...)
	case *models.PostInput:
		return v.validatePostInput(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validatePostInput(input models.PostInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldName, FieldAvatar}
	}

	fieldErrors := FieldErrors{}

	for _, field := range fields {
		switch field {
		case FieldText:
			if input.Text == "" {
				fieldErrors[FieldText] = "Text field is required"
				continue
			}
			if n := utf8.RuneCountInString(input.Text); n < textMinLen || n > textMaxLen {
				fieldErrors[FieldText] = "Text must be between 1 and 300 characters"
			}
		case FieldName:
			if input.Name == "" {
				fieldErrors[FieldName] = "Name field is required"
			}
		case FieldAvatar:
			// optional; nothing to check yet
		default:
			return ErrUnknownField
		}
	}

	if len(fieldErrors) > 0 {
		return fieldErrors
	}

	return nil
}
