package types

// EmploymentType is the detected employment arrangement for a posting.
type EmploymentType string

// Employment types. Unknown is returned only for empty input; postings that
// state nothing are presumed full-time.
const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentPartTime EmploymentType = "part_time"
	EmploymentContract EmploymentType = "contract"
	EmploymentTemp     EmploymentType = "temp"
	EmploymentUnknown  EmploymentType = "unknown"
)

// RemoteStatus is the detected work-location arrangement.
type RemoteStatus string

// Remote statuses.
const (
	RemoteStatusRemote  RemoteStatus = "remote"
	RemoteStatusHybrid  RemoteStatus = "hybrid"
	RemoteStatusOnsite  RemoteStatus = "onsite"
	RemoteStatusUnknown RemoteStatus = "unknown"
)

// LocationResult is the location detector's judgment for one posting.
type LocationResult struct {
	Match        bool         `json:"match"`
	Location     string       `json:"location"`
	RemoteStatus RemoteStatus `json:"remote_status"`
}

// UserPreferences carries the user's stated preferences consulted during
// detection and auto-skip evaluation.
type UserPreferences struct {
	Location string `json:"location,omitempty"`
}
