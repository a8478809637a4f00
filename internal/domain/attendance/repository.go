package attendance

import "context"

// AttendanceRepository defines data access for attendance records. Date
// strings are YYYY-MM-DD; range bounds are inclusive.
type AttendanceRepository interface {
	// Upsert creates or overwrites the record for its date. Used for manual
	// marks only.
	Upsert(ctx context.Context, rec Record) (Record, error)

	// CreateIfAbsent inserts the given records, skipping any date that
	// already has a record. This is the merge discipline for auto-populated
	// records: manual entries are never overwritten. Returns the number of
	// rows actually inserted.
	CreateIfAbsent(ctx context.Context, recs []Record) (int, error)

	GetByDate(ctx context.Context, date string) (Record, error)

	ListByRange(ctx context.Context, start, end string) ([]Record, error)

	Delete(ctx context.Context, date string) error
}
