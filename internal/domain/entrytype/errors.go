package entrytype

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/bibtypes/internal/domain"
)

// ErrEmptyName is returned by Define when the type name is blank. No mutation
// happens; the caller is expected to ask the user for a name.
var ErrEmptyName = fmt.Errorf("%w: you must fill in a name for the entry type", domain.ErrValidation)

// ErrReservedName is returned by Define for the name of the listing
// sentinel, which would be indistinguishable from it in selection lists.
var ErrReservedName = fmt.Errorf("%w: %q is reserved and cannot name an entry type",
	domain.ErrValidation, NewTypeSentinel)

// InvalidSchemaError reports field names listed as both required and
// optional. It unwraps to a *domain.ValidationError keyed on "optional" so
// adapters can render per-field details.
type InvalidSchemaError struct {
	Name    string
	Overlap []string
}

func (e *InvalidSchemaError) Error() string {
	return fmt.Sprintf("entry type %q lists fields as both required and optional: %s",
		e.Name, strings.Join(e.Overlap, ", "))
}

func (e *InvalidSchemaError) Unwrap() error {
	return &domain.ValidationError{Fields: map[string]string{
		"optional": "overlaps required fields: " + strings.Join(e.Overlap, ", "),
	}}
}

// NotFoundError is returned by Remove when no type with the name exists.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("there is no entry type %q defined", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return domain.ErrNotFound
}

// NotCustomError is returned by Remove when the name resolves only to a
// standard type. Standard types are never removable.
type NotCustomError struct {
	Name string
}

func (e *NotCustomError) Error() string {
	return fmt.Sprintf("%q is a standard type", e.Name)
}

func (e *NotCustomError) Unwrap() error {
	return domain.ErrForbidden
}
