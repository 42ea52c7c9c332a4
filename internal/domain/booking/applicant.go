package booking

import (
	"errors"
	"strings"
)

var ErrEmptyApplicant = errors.New("company name and full name are required")

// Applicant identifies a person by company and full name. There are no user
// accounts; the trimmed pair is the identity.
type Applicant struct {
	companyName string
	fullName    string
}

func NewApplicant(companyName, fullName string) (Applicant, error) {
	c := strings.TrimSpace(companyName)
	n := strings.TrimSpace(fullName)
	if c == "" || n == "" {
		return Applicant{}, ErrEmptyApplicant
	}
	return Applicant{companyName: c, fullName: n}, nil
}

func (a Applicant) CompanyName() string { return a.companyName }
func (a Applicant) FullName() string    { return a.fullName }

// Key is the unique-applicant key used by statistics.
func (a Applicant) Key() string {
	return ApplicantKey(a.companyName, a.fullName)
}

func (a Applicant) Matches(companyName, fullName string) bool {
	return strings.TrimSpace(companyName) == a.companyName &&
		strings.TrimSpace(fullName) == a.fullName
}

func ApplicantKey(companyName, fullName string) string {
	return strings.TrimSpace(companyName) + "|" + strings.TrimSpace(fullName)
}

// ReconstructApplicant rebuilds a stored applicant without validation.
func ReconstructApplicant(companyName, fullName string) Applicant {
	return Applicant{companyName: companyName, fullName: fullName}
}
