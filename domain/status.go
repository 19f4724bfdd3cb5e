package domain

// Status is the lifecycle state of a thread, comment or reply. Deletion is
// logical: the record and its content stay in storage.
type Status int8

const (
	StatusActive Status = iota
	StatusDeleted
)

// StatusFromDeleted maps the stored is_delete flag to a Status.
func StatusFromDeleted(isDelete bool) Status {
	if isDelete {
		return StatusDeleted
	}
	return StatusActive
}

func (s Status) IsDeleted() bool {
	return s == StatusDeleted
}

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusDeleted:
		return "DELETED"
	default:
		return "UNKNOWN"
	}
}
