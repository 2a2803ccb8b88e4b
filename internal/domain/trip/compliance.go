package trip

import "github.com/haulpath/tripplan/internal/domain/hos"

// Compliance reports whether a produced schedule honors the hours-of-service
// invariants. A non-compliant result never reaches the client; the planner
// treats it as an internal failure.
type Compliance struct {
	IsCompliant bool     `json:"is_compliant"`
	Violations  []string `json:"violations"`
	Warnings    []string `json:"warnings"`
}

// AssessCompliance verifies the daily logs against the scheduler invariants.
func AssessCompliance(logs []hos.DailyLog) Compliance {
	violations := hos.VerifyLogs(logs)
	if violations == nil {
		violations = []string{}
	}
	return Compliance{
		IsCompliant: len(violations) == 0,
		Violations:  violations,
		Warnings:    []string{},
	}
}
