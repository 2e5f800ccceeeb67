package store

// NewStoreWithIDs creates a store drawing run ids from ids.
func NewStoreWithIDs(ids ...string) *Store {
	return &Store{newID: func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}}
}
