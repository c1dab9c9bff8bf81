package constants

// JobStatus is the canonical status for rows in jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued     JobStatus = "QUEUED"     // accepted, waiting for processing
	JobStatusProcessing JobStatus = "PROCESSING" // in progress
	JobStatusDone       JobStatus = "DONE"       // terminal success, artifacts exist
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure, error_message set
	JobStatusDeleted    JobStatus = "DELETED"    // soft-deleted, hidden from listings
)

// JobStatuses holds every storable status value, for schema validation.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusProcessing),
	string(JobStatusDone),
	string(JobStatusFailed),
	string(JobStatusDeleted),
}

// Terminal reports whether a status admits no further transitions
// other than DELETED.
func (s JobStatus) Terminal() bool {
	return s == JobStatusDone || s == JobStatusFailed || s == JobStatusDeleted
}

// CanTransition reports whether moving from s to next is a legal
// forward move. DELETED is reachable from anything except itself;
// everything else only moves forward.
func (s JobStatus) CanTransition(next JobStatus) bool {
	if next == JobStatusDeleted {
		return s != JobStatusDeleted
	}
	switch s {
	case JobStatusQueued:
		return next == JobStatusProcessing
	case JobStatusProcessing:
		return next == JobStatusDone || next == JobStatusFailed
	default:
		return false
	}
}
