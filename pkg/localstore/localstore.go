package localstore

// Store is a named-slot durable key-value binding, the storefront's local
// persistence layer. Each slot holds one opaque serialized value; the
// catalog lives in a single slot as one JSON array, the session user in
// another. There is no cross-slot transaction and no compare-and-swap:
// concurrent writers of the same slot are last-writer-wins by design.
type Store interface {
	// Get returns the slot's value and whether the slot exists.
	Get(key string) ([]byte, bool, error)

	// Set creates or overwrites the slot with the given value.
	Set(key string, value []byte) error

	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(key string) error
}
