package constant

// ProjectStatus values are stored as-is and exposed on the wire.
// not_started <-> in_progress transitions are system-managed from card
// existence; ready_to_write and complete are user-set and never touched
// by the card lifecycle.
type ProjectStatus string

const (
	ProjectStatusNotStarted   ProjectStatus = "not_started"
	ProjectStatusInProgress   ProjectStatus = "in_progress"
	ProjectStatusReadyToWrite ProjectStatus = "ready_to_write"
	ProjectStatusComplete     ProjectStatus = "complete"
)

func (ps ProjectStatus) Valid() bool {
	switch ps {
	case ProjectStatusNotStarted, ProjectStatusInProgress, ProjectStatusReadyToWrite, ProjectStatusComplete:
		return true
	}

	return false
}
