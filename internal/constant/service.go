package constant

const (
	// TrackerFileName is the name of the durable tracker record inside the data directory.
	TrackerFileName = "pity_tracker.json"

	// RecalculatedSubjectPrefix prefixes the NATS subject of recalculation summaries.
	RecalculatedSubjectPrefix = "PITY.recalculated."

	// LockNameTrackerRecord is the distributed lock guarding the tracker record.
	LockNameTrackerRecord = "pityloot:tracker-record"
)
