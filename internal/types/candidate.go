// Package types provides type definitions for structured data used throughout the job-matcher system.
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CompanySize is a closed enumeration of company size bands. The bands are
// ordered: Startup < Small < Medium < Large < Enterprise.
type CompanySize string

const (
	SizeStartup    CompanySize = "startup"
	SizeSmall      CompanySize = "small"
	SizeMedium     CompanySize = "medium"
	SizeLarge      CompanySize = "large"
	SizeEnterprise CompanySize = "enterprise"
)

// companySizeOrder maps each size band to its position for distance comparisons.
var companySizeOrder = map[CompanySize]int{
	SizeStartup:    0,
	SizeSmall:      1,
	SizeMedium:     2,
	SizeLarge:      3,
	SizeEnterprise: 4,
}

// Order returns the ordinal position of the size band and whether the value
// is a known band. Unknown or empty values report ok=false.
func (s CompanySize) Order() (int, bool) {
	pos, ok := companySizeOrder[s]
	return pos, ok
}

// CandidateProfile describes one candidate as loaded by an external
// collaborator. The profile is immutable for the duration of a scoring call.
//
// SalaryExpectation and CurrentSalary use zero to mean "not provided";
// downstream scoring resolves missing salary data to documented neutral
// defaults rather than failing.
type CandidateProfile struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required,min=1"`
	Skills      string    `json:"skills,omitempty"`
	Experience  string    `json:"experience,omitempty"`
	Description string    `json:"description,omitempty"`

	SalaryExpectation float64 `json:"salary_expectation,omitempty" validate:"gte=0"`
	CurrentSalary     float64 `json:"current_salary,omitempty" validate:"gte=0"`

	PreferredCompanySize CompanySize `json:"preferred_company_size,omitempty"`
	WorkPreferences      []string    `json:"work_preferences,omitempty"`
	Industries           []string    `json:"industries,omitempty"`
	Values               []string    `json:"values,omitempty"`
	Location             string      `json:"location,omitempty"`
}

// Validate checks the candidate profile for structural problems that cannot
// be resolved to a neutral default. It returns a *MalformedInputError so the
// caller can decide whether to skip or abort.
func (c *CandidateProfile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return &MalformedInputError{Entity: "candidate", ID: c.ID.String(), Cause: err}
	}
	if c.PreferredCompanySize != "" {
		if _, ok := c.PreferredCompanySize.Order(); !ok {
			return &MalformedInputError{
				Entity: "candidate",
				ID:     c.ID.String(),
				Cause:  fmt.Errorf("unknown preferred_company_size %q", c.PreferredCompanySize),
			}
		}
	}
	return nil
}
