package models

// Question target constants
const (
	TargetGod   = "god"
	TargetDevil = "devil"
)

// CreatedAtLayout is the timestamp format stored with every question.
// Fixed-width UTC milliseconds, so lexicographic order is chronological.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z"

// AllowedBeliefs is the fixed set of self-reported belief values.
var AllowedBeliefs = []string{
	"chretien",
	"musulman",
	"bouddhiste",
	"hindou",
	"athee_agnostique",
	"new_age",
	"prefere_pas_repondre",
}

// IsAllowedTarget reports whether target is one of the two question targets.
func IsAllowedTarget(target string) bool {
	return target == TargetGod || target == TargetDevil
}

// IsAllowedBelief reports whether belief is in the fixed belief set.
func IsAllowedBelief(belief string) bool {
	for _, b := range AllowedBeliefs {
		if belief == b {
			return true
		}
	}
	return false
}

// Request types

// SubmitRequest is the raw submission body. Name, age and the question text
// are typed loosely on purpose: clients send age as a string or a number,
// and a non-string name is tolerated (treated as absent).
type SubmitRequest struct {
	Target       string `json:"target"`
	Name         any    `json:"name"`
	Age          any    `json:"age"`
	Belief       string `json:"belief"`
	QuestionText any    `json:"questionText"`
}

// NewQuestion is a validated, normalized submission ready to persist.
type NewQuestion struct {
	Target       string
	Name         *string
	Age          *int
	Belief       string
	QuestionText string
}

// Response types

type SubmitResponse struct {
	ID string `json:"id"`
}

type AdminListResponse struct {
	Total int        `json:"total"`
	Count int        `json:"count"`
	Rows  []Question `json:"rows"`
}

type DeleteResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Domain types

// Question is a stored record. IDs are opaque strings: the relational
// backend renders its integer key as a decimal string, the blob backend
// uses a random UUID.
type Question struct {
	ID           string  `json:"id"`
	Target       string  `json:"target"`
	Name         *string `json:"name"`
	Age          *int    `json:"age"`
	Belief       string  `json:"belief"`
	QuestionText string  `json:"questionText"`
	CreatedAt    string  `json:"createdAt"`
}
