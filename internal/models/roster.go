package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/roomsplit/internal/common"
)

// Roster is the closed, ordered set of roommates sharing expenses. Its order
// is the canonical iteration order used by the settlement engine.
type Roster struct {
	names []string
	index map[string]int
}

// NewRoster builds a roster from configured names. Names are trimmed; the
// list must be non-empty and free of blanks and duplicates.
func NewRoster(names []string) (*Roster, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: roster is empty", common.ErrValidation)
	}

	r := &Roster{names: make([]string, 0, len(names)), index: make(map[string]int, len(names))}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, fmt.Errorf("%w: blank roommate name", common.ErrValidation)
		}
		if _, dup := r.index[n]; dup {
			return nil, fmt.Errorf("%w: duplicate roommate %q", common.ErrValidation, n)
		}
		r.index[n] = len(r.names)
		r.names = append(r.names, n)
	}
	return r, nil
}

// MustRoster is NewRoster that panics, for tests and static setups.
func MustRoster(names ...string) *Roster {
	r, err := NewRoster(names)
	if err != nil {
		panic(err)
	}
	return r
}

// Names returns a copy of the roommate names in canonical order.
func (r *Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of roommates.
func (r *Roster) Len() int { return len(r.names) }

// Contains reports whether name is on the roster.
func (r *Roster) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Validate reports whether name is an acceptable expense owner.
func (r *Roster) Validate(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %w", common.ErrValidation, common.ErrRoommateRequired)
	}
	if !r.Contains(name) {
		return fmt.Errorf("%w: %w: %q", common.ErrValidation, common.ErrUnknownRoommate, name)
	}
	return nil
}
