package entities

// Updates is the name-keyed result of an aggregation run. Names keep the order
// in which they were first resolved and each name is stored at most once.
// The zero value is an empty mapping ready to use.
type Updates struct {
	order   []string
	records map[string]UpdateRecord
}

// NewUpdates creates an empty result mapping.
func NewUpdates() *Updates {
	return &Updates{records: make(map[string]UpdateRecord)}
}

// Has reports whether name already has a record.
func (u *Updates) Has(name string) bool {
	_, ok := u.records[name]
	return ok
}

// Add stores record unless its name is already present. It returns false
// when the record was skipped.
func (u *Updates) Add(record UpdateRecord) bool {
	if u.Has(record.Name) {
		return false
	}
	if u.records == nil {
		u.records = make(map[string]UpdateRecord)
	}
	u.records[record.Name] = record
	u.order = append(u.order, record.Name)
	return true
}

// Get returns the record for name.
func (u *Updates) Get(name string) (UpdateRecord, bool) {
	record, ok := u.records[name]
	return record, ok
}

// Len returns the number of resolved names.
func (u *Updates) Len() int {
	return len(u.order)
}

// Records returns every record in insertion order.
func (u *Updates) Records() []UpdateRecord {
	result := make([]UpdateRecord, 0, len(u.order))
	for _, name := range u.order {
		result = append(result, u.records[name])
	}
	return result
}
