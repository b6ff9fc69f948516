package lookup

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("lookup: name not found")

	// ErrAmbiguous is matched by every *AmbiguousError.
	ErrAmbiguous = errors.New("lookup: ambiguous name")
)

// Named is a variant of a closed enumeration with a canonical name.
type Named interface {
	comparable
	String() string
}

// NotFoundError reports a name that matches no variant.
type NotFoundError struct {
	Kind     string   // enumeration name, e.g. "precision"
	Name     string   // attempted name
	Possible []string // every canonical name, in declaration order
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found. possible names: [%s]",
		e.Kind, e.Name, strings.Join(e.Possible, ", "))
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AmbiguousError reports a name that matches more than one variant.
type AmbiguousError struct {
	Kind    string
	Name    string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%s %q is ambiguous. matches: [%s]",
		e.Kind, e.Name, strings.Join(e.Matches, ", "))
}

// Is reports whether target is ErrAmbiguous.
func (e *AmbiguousError) Is(target error) bool {
	return target == ErrAmbiguous
}

// Names returns the canonical names of variants, in order.
func Names[T Named](variants []T) []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.String()
	}
	return names
}

// ByName returns the first variant whose canonical name equals name.
// The comparison is exact and case-sensitive.
func ByName[T Named](kind, name string, variants []T) (T, error) {
	for _, v := range variants {
		if v.String() == name {
			return v, nil
		}
	}
	var zero T
	return zero, &NotFoundError{Kind: kind, Name: name, Possible: Names(variants)}
}

// ByNameOpt is ByName for optional input. A nil name returns
// (zero, false, nil) without consulting variants.
func ByNameOpt[T Named](kind string, name *string, variants []T) (T, bool, error) {
	var zero T
	if name == nil {
		return zero, false, nil
	}
	v, err := ByName(kind, *name, variants)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// ByNameFold matches name against canonical names after Unicode case
// folding. More than one match yields an *AmbiguousError.
func ByNameFold[T Named](kind, name string, variants []T) (T, error) {
	var zero T
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(name))

	var matches []T
	for _, v := range variants {
		if fold.String(v.String()) == want {
			matches = append(matches, v)
		}
	}

	switch len(matches) {
	case 0:
		return zero, &NotFoundError{Kind: kind, Name: name, Possible: Names(variants)}
	case 1:
		return matches[0], nil
	default:
		return zero, &AmbiguousError{Kind: kind, Name: name, Matches: Names(matches)}
	}
}
