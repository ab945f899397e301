package domain

// IssueStatus enumerates lifecycle states for reported issues.
type IssueStatus string

const (
	IssueStatusReported   IssueStatus = "reported"
	IssueStatusInProgress IssueStatus = "in-progress"
	IssueStatusResolved   IssueStatus = "resolved"
	IssueStatusRejected   IssueStatus = "rejected"
)

// ValidStatus reports whether s is a known lifecycle state.
func ValidStatus(s IssueStatus) bool {
	switch s {
	case IssueStatusReported, IssueStatusInProgress, IssueStatusResolved, IssueStatusRejected:
		return true
	}
	return false
}

// IssueCategory enumerates the fixed reporting categories.
type IssueCategory string

const (
	CategoryStreetLighting  IssueCategory = "Street Lighting"
	CategoryRoadMaintenance IssueCategory = "Road Maintenance"
	CategoryParksRecreation IssueCategory = "Parks & Recreation"
	CategoryWasteManagement IssueCategory = "Waste Management"
	CategoryGraffiti        IssueCategory = "Graffiti & Vandalism"
	CategoryTrafficSignals  IssueCategory = "Traffic Signals"
	CategorySidewalkIssues  IssueCategory = "Sidewalk Issues"
	CategoryTreeMaintenance IssueCategory = "Tree Maintenance"
	CategoryOther           IssueCategory = "Other"
)

// Categories lists every reporting category in presentation order.
func Categories() []IssueCategory {
	return []IssueCategory{
		CategoryStreetLighting,
		CategoryRoadMaintenance,
		CategoryParksRecreation,
		CategoryWasteManagement,
		CategoryGraffiti,
		CategoryTrafficSignals,
		CategorySidewalkIssues,
		CategoryTreeMaintenance,
		CategoryOther,
	}
}

// ValidCategory reports whether c is a known category.
func ValidCategory(c IssueCategory) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// DateLayout is the creation-date format persisted on every issue.
const DateLayout = "2006-01-02"

// Issue is the aggregate for community maintenance reports.
// JSON field names are the persisted slot contract; changes must be
// additive and optional since no migration path exists.
type Issue struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Category    IssueCategory `json:"category"`
	Status      IssueStatus   `json:"status"`
	Date        string        `json:"date"`
	ReportedBy  *string       `json:"reportedBy,omitempty"`
	ImageURL    *string       `json:"imageUrl,omitempty"`
	VideoURL    *string       `json:"videoUrl,omitempty"`
}
