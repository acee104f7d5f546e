package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrEmptyEnglish     = errors.New("english word is required")
	ErrEmptyWordbookID  = errors.New("wordbook id is required")
	ErrEmptyDefinitions = errors.New("at least one definition is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidSortKey   = errors.New("invalid sort key")
	ErrInvalidSortOrder = errors.New("invalid sort order")
	ErrInvalidPage      = errors.New("invalid page number")
	ErrInvalidLimit     = errors.New("invalid page limit")
)
