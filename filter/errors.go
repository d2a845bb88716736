package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateAlias is wrapped by DuplicateAliasError.
	ErrDuplicateAlias = errors.New("duplicate filter alias")

	// ErrFilterNotFound is wrapped by MissingFilterError.
	ErrFilterNotFound = errors.New("filter not found")

	// ErrAliasAssigned is returned when a definition that already belongs to
	// a collection is added under another alias.
	ErrAliasAssigned = errors.New("filter alias already assigned")

	// ErrEmptyAlias is returned when a definition is added without an alias.
	ErrEmptyAlias = errors.New("filter alias cannot be empty")
)

// DuplicateAliasError reports an alias registered twice in one collection.
type DuplicateAliasError struct {
	Alias string
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("Filter %s already registered", e.Alias)
}

func (e *DuplicateAliasError) Unwrap() error { return ErrDuplicateAlias }

// MissingFilterError reports a registry name with no constructor.
type MissingFilterError struct {
	Name string
}

func (e *MissingFilterError) Error() string {
	return fmt.Sprintf("Filter class %sFilter could not be found.", e.Name)
}

func (e *MissingFilterError) Unwrap() error { return ErrFilterNotFound }
