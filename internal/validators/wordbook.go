package validators

import (
	"context"
	"strings"

	"github.com/mkondo/go-wordbook/models"
)

// Field names accepted by [WordbookValidator.Validate].
const (
	FieldName        = "name"
	FieldEnglish     = "english"
	FieldWordbookID  = "wordbook_id"
	FieldDefinitions = "definitions"
	FieldSortBy      = "sort_by"
	FieldSortOrder   = "sort_order"
	FieldPage        = "page"
	FieldLimit       = "limit"
)

// maxNameLen mirrors the server-side limit on wordbook names.
const maxNameLen = 100

// maxSearchLimit mirrors the server-side cap on search page size.
const maxSearchLimit = 100

type WordbookValidator struct {
}

func NewWordbookValidator() Validator {
	return &WordbookValidator{}
}

func (v *WordbookValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.WordbookData:
		return v.validateWordbookData(ctx, value, fields...)
	case *models.WordbookData:
		return v.validateWordbookData(ctx, *value, fields...)

	case models.WordbookPatch:
		return v.validateWordbookPatch(ctx, value)
	case *models.WordbookPatch:
		return v.validateWordbookPatch(ctx, *value)

	case models.NewCard:
		return v.validateNewCard(ctx, value, fields...)
	case *models.NewCard:
		return v.validateNewCard(ctx, *value, fields...)

	case models.CardPatch:
		return v.validateCardPatch(ctx, value)
	case *models.CardPatch:
		return v.validateCardPatch(ctx, *value)

	case models.SearchQuery:
		return v.validateSearchQuery(ctx, value, fields...)
	case *models.SearchQuery:
		return v.validateSearchQuery(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *WordbookValidator) validateWordbookData(_ context.Context, data models.WordbookData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(data.Name)
			if name == "" {
				return ErrEmptyName
			}
			if len([]rune(name)) > maxNameLen {
				return ErrNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WordbookValidator) validateWordbookPatch(_ context.Context, patch models.WordbookPatch) error {
	if patch.Name == nil && patch.Description == nil && patch.IsPublic == nil {
		return ErrNoFieldsToUpdate
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return ErrEmptyName
		}
		if len([]rune(name)) > maxNameLen {
			return ErrNameTooLong
		}
	}

	return nil
}

func (v *WordbookValidator) validateNewCard(_ context.Context, card models.NewCard, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEnglish, FieldWordbookID}
	}

	for _, f := range fields {
		switch f {
		case FieldEnglish:
			if strings.TrimSpace(card.English) == "" {
				return ErrEmptyEnglish
			}
		case FieldWordbookID:
			if card.WordbookID == "" {
				return ErrEmptyWordbookID
			}
		case FieldDefinitions:
			if len(card.Definitions) == 0 {
				return ErrEmptyDefinitions
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WordbookValidator) validateCardPatch(_ context.Context, patch models.CardPatch) error {
	if patch.English == nil && patch.Definitions == nil && patch.Synonyms == nil &&
		patch.ExampleSentences == nil && patch.Phonetics == nil {
		return ErrNoFieldsToUpdate
	}

	if patch.English != nil && strings.TrimSpace(*patch.English) == "" {
		return ErrEmptyEnglish
	}

	return nil
}

func (v *WordbookValidator) validateSearchQuery(_ context.Context, query models.SearchQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSortBy, FieldSortOrder, FieldPage, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldSortBy:
			switch query.SortBy {
			case "", models.SortByCreatedAt, models.SortByUpdatedAt, models.SortByNumWords:
			default:
				return ErrInvalidSortKey
			}
		case FieldSortOrder:
			switch query.SortOrder {
			case "", models.SortOrderAsc, models.SortOrderDesc:
			default:
				return ErrInvalidSortOrder
			}
		case FieldPage:
			if query.Page < 0 {
				return ErrInvalidPage
			}
		case FieldLimit:
			if query.Limit < 0 || query.Limit > maxSearchLimit {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
