package studies

// StudyRecord is the immutable row projection returned by Search.
// Optional columns are pointers; a nil field means the registry holds no
// value for it. The column order matches the fixed SELECT template in
// store.go and never changes.
type StudyRecord struct {
	StudyID       int     `gorm:"column:study_id" json:"study_id"`
	Title         string  `gorm:"column:study_title" json:"study_title"`
	Abstract      *string `gorm:"column:study_abstract" json:"study_abstract,omitempty"`
	PIName        *string `gorm:"column:pi_name" json:"pi_name,omitempty"`
	PIEmail       *string `gorm:"column:pi_email" json:"pi_email,omitempty"`
	PIAffiliation *string `gorm:"column:pi_affiliation" json:"pi_affiliation,omitempty"`
	LabPersonName *string `gorm:"column:lab_person_name" json:"lab_person_name,omitempty"`
}

// Contact is a person attached to a study (principal investigator or lab
// contact).
type Contact struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Affiliation string `json:"affiliation"`
}

// Defaults applied when the registry holds no value for an optional field.
// Declared once; every projection path uses these rather than probing for
// field presence at the call site.
const (
	DefaultAbstract    = "No abstract available"
	DefaultDescription = "No description available"
	DefaultStatus      = "sandbox"
)

// StudyDetail is the full per-study projection served by the lookup
// endpoints. Optional fields carry their declared defaults when absent.
type StudyDetail struct {
	StudyID        int      `json:"study_id"`
	Title          string   `json:"title"`
	Abstract       string   `json:"abstract"`
	Description    string   `json:"description"`
	Alias          string   `json:"study_alias"`
	Status         string   `json:"status"`
	PI             *Contact `json:"principal_investigator,omitempty"`
	LabPerson      *Contact `json:"lab_person,omitempty"`
	PublicationDOI []string `json:"publication_doi"`
	PublicationPID []string `json:"publication_pid"`
}

// StudySummary is one entry of the study listing: identifier plus best-effort
// title and status.
type StudySummary struct {
	StudyID int    `json:"study_id"`
	Title   string `json:"title"`
	Status  string `json:"status"`
}

// visibilityRank orders artifact visibility states from most to least
// visible. A study's status is the most visible state among its artifacts.
var visibilityRank = map[string]int{
	"public":            4,
	"private":           3,
	"awaiting_approval": 2,
	"sandbox":           1,
}

// mostVisible returns the highest-ranked visibility among the given states,
// or DefaultStatus when the list is empty or holds only unknown states.
func mostVisible(states []string) string {
	best := DefaultStatus
	bestRank := 0
	for _, st := range states {
		if r := visibilityRank[st]; r > bestRank {
			best = st
			bestRank = r
		}
	}
	return best
}
