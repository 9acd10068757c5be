// internal/domain/models/record.go
package models

// Record carries the identity and ordering fields shared by every content
// entity the backend returns.
//
// The backend is inconsistent about identity: older collections expose the
// raw Mongo `_id`, newer ones a plain `id`. ResolveID collapses the two,
// preferring `_id` when both are present. The resolved value is written back
// into ID so templates and managers only ever see one field.
type Record struct {
	ID      string `json:"id"`
	MongoID string `json:"_id"`

	// Order controls client-side display order. Missing values decode to
	// zero and sort before any explicit positive order.
	Order int `json:"order"`
}

// ResolveID collapses `_id`/`id` into the ID field.
func (r *Record) ResolveID() {
	if r.MongoID != "" {
		r.ID = r.MongoID
	}
}

// Ordered is implemented by entities that carry a display order.
type Ordered interface {
	DisplayOrder() int
}

// DisplayOrder implements Ordered.
func (r Record) DisplayOrder() int { return r.Order }
