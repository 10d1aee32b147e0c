package domain

// ChangeTracker records which fields of an aggregate were modified so the
// repository writes only those columns.
type ChangeTracker struct {
	dirty map[string]bool
	order []string
}

// NewChangeTracker creates an empty ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirty: make(map[string]bool)}
}

// MarkDirty flags field as modified.
func (ct *ChangeTracker) MarkDirty(field string) {
	if !ct.dirty[field] {
		ct.dirty[field] = true
		ct.order = append(ct.order, field)
	}
}

// Dirty reports whether field was modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	return ct.dirty[field]
}

// HasChanges reports whether any field was modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.order) > 0
}

// DirtyFields returns modified fields in the order they were first marked.
func (ct *ChangeTracker) DirtyFields() []string {
	out := make([]string, len(ct.order))
	copy(out, ct.order)
	return out
}

// Clear forgets every modification.
func (ct *ChangeTracker) Clear() {
	ct.dirty = make(map[string]bool)
	ct.order = nil
}
