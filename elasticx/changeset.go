package elasticx

import "reflect"

// PendingChange is one buffered, not-yet-sent mutation against a single
// document. Once appended to the change set it is never modified.
type PendingChange struct {
	// EntityType is the declared type of the entity, used to resolve the
	// target index and document type at encode time.
	EntityType reflect.Type

	// ID is the document identifier, stable across add, update and delete.
	ID string

	// Document is the entity instance. Nil for deletes.
	Document any

	// Delete discriminates delete actions from add-or-update actions.
	Delete bool
}

// changeSet is the ordered buffer of uncommitted mutations owned by a
// Context. Changes on the same id are not coalesced; each one is emitted as
// a separate bulk action in insertion order, since the store applies bulk
// actions in array order.
//
// The set is not safe for concurrent producers. Callers must serialize their
// own calls into a single context instance.
type changeSet struct {
	changes []PendingChange
}

func (s *changeSet) add(c PendingChange) {
	s.changes = append(s.changes, c)
}

func (s *changeSet) len() int {
	return len(s.changes)
}

// all returns the current ordered sequence. The caller must not mutate the
// returned slice elements.
func (s *changeSet) all() []PendingChange {
	return s.changes
}

func (s *changeSet) clear() {
	s.changes = nil
}
