package roster

import (
	"github.com/pranay7979/BrainyCheck/internal/domain/identity"
)

// Display defaults for accounts with blank fields.
const (
	UnknownDoctorName = "Unknown Doctor"
	UnknownUserName   = "Unknown User"
	UnknownContact    = "N/A"
)

// DoctorEntry is a doctor account annotated with its upload activity.
type DoctorEntry struct {
	*identity.UserProfile
	ScanCount int `json:"scan_count"`
}

// Roster is the admin dashboard aggregate: every account partitioned by role.
// The three slices are disjoint and together cover all accounts — admins and
// accounts with an unrecognized role land in General.
type Roster struct {
	Doctors       []*DoctorEntry          `json:"doctors"`
	Receptionists []*identity.UserProfile `json:"receptionists"`
	General       []*identity.UserProfile `json:"general"`
	TotalScans    int                     `json:"total_scans"`
}
