package session

import (
	"strings"

	perrors "github.com/zhubert/chatter/internal/errors"
)

// DefaultAlias is the identity a session starts with.
const DefaultAlias Alias = "guest"

// Alias is a display name attributed to a sent message.
type Alias string

// String returns the alias as a plain string.
func (a Alias) String() string { return string(a) }

// Selection is the highlighted row of a rendered alias list.
// The zero value means nothing is selected.
type Selection struct {
	Index int
	Valid bool
}

// Selected returns a selection pointing at row i.
func Selected(i int) Selection {
	return Selection{Index: i, Valid: true}
}

// NoSelection is the empty selection.
var NoSelection = Selection{}

// Roster is the ordered list of known aliases plus the active one.
// Duplicates are allowed and the active alias need not be a member.
type Roster struct {
	entries []Alias
	active  Alias
}

// NewRoster creates a roster seeded with one entry equal to the active alias.
func NewRoster(initial Alias) *Roster {
	return &Roster{
		entries: []Alias{initial},
		active:  initial,
	}
}

// Entries returns a copy of the roster in display order.
func (r *Roster) Entries() []Alias {
	out := make([]Alias, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *Roster) Len() int {
	return len(r.entries)
}

// Active returns the alias currently stamping outgoing messages.
func (r *Roster) Active() Alias {
	return r.active
}

// SetActive replaces the active alias without consulting the entries.
func (r *Roster) SetActive(name Alias) {
	r.active = name
}

// Add appends name to the end of the roster.
func (r *Roster) Add(name string) error {
	if name == "" {
		return perrors.InvalidAlias("alias name cannot be empty")
	}
	r.entries = append(r.entries, Alias(name))
	return nil
}

// resolve maps a selection onto an index into entries.
// Nothing selected, or an empty roster, is a NoSelection error; a stale index
// past the end is NotFound.
func (r *Roster) resolve(op perrors.Op, action string, sel Selection) (int, error) {
	if !sel.Valid || len(r.entries) == 0 {
		return 0, perrors.NoAliasSelected(op, action)
	}
	if sel.Index < 0 || sel.Index >= len(r.entries) {
		return 0, perrors.AliasIndexOutOfRange(op, sel.Index, len(r.entries))
	}
	return sel.Index, nil
}

// RemoveAt removes exactly one entry; later entries shift down by one.
// The active alias is never changed.
func (r *Roster) RemoveAt(sel Selection) (Alias, error) {
	i, err := r.resolve(perrors.Op("session.RemoveAlias"), "remove", sel)
	if err != nil {
		return "", err
	}
	removed := r.entries[i]
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return removed, nil
}

// SelectAt makes the entry at sel the active alias.
func (r *Roster) SelectAt(sel Selection) (Alias, error) {
	i, err := r.resolve(perrors.Op("session.SelectAlias"), "select", sel)
	if err != nil {
		return "", err
	}
	r.active = r.entries[i]
	return r.active, nil
}

// Contains reports whether name appears in the roster at least once.
func (r *Roster) Contains(name Alias) bool {
	for _, a := range r.entries {
		if a == name {
			return true
		}
	}
	return false
}

// seed appends non-blank names; used only while building a session.
func (r *Roster) seed(names []string) {
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		r.entries = append(r.entries, Alias(n))
	}
}
