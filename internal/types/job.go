package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ExperienceLevel is a closed enumeration of seniority bands for a job listing.
type ExperienceLevel string

const (
	LevelEntry  ExperienceLevel = "entry"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
	LevelLead   ExperienceLevel = "lead"
)

// IsValid reports whether the level is one of the known bands. An empty
// level is treated as "unspecified" and is valid.
func (l ExperienceLevel) IsValid() bool {
	switch l {
	case "", LevelEntry, LevelMid, LevelSenior, LevelLead:
		return true
	}
	return false
}

// Requirement is one discrete job requirement with an importance weight.
// A non-positive weight is treated as the default weight of 1.
type Requirement struct {
	Name   string  `json:"name" validate:"required,min=1"`
	Weight float64 `json:"weight,omitempty"`
}

// EffectiveWeight returns the requirement weight, substituting the default
// of 1 when the stored weight is zero or negative.
func (r Requirement) EffectiveWeight() float64 {
	if r.Weight <= 0 {
		return 1
	}
	return r.Weight
}

// JobListing describes one job posting as loaded by an external collaborator.
// SalaryMin/SalaryMax use zero to mean "not published".
type JobListing struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title" validate:"required,min=1"`
	Description string    `json:"description,omitempty"`

	RequiredSkills  []string      `json:"required_skills,omitempty"`
	PreferredSkills []string      `json:"preferred_skills,omitempty"`
	Requirements    []Requirement `json:"requirements,omitempty" validate:"dive"`

	SalaryMin float64 `json:"salary_min,omitempty" validate:"gte=0"`
	SalaryMax float64 `json:"salary_max,omitempty" validate:"gte=0"`

	CompanySize     CompanySize `json:"company_size,omitempty"`
	WorkEnvironment string      `json:"work_environment,omitempty"`
	Industry        string      `json:"industry,omitempty"`
	CompanyValues   []string    `json:"company_values,omitempty"`

	CompanyRating      float64         `json:"company_rating,omitempty" validate:"gte=0,lte=5"`
	Verified           bool            `json:"verified,omitempty"`
	FastReplyGuarantee bool            `json:"fast_reply_guarantee,omitempty"`
	RecentHires        int             `json:"recent_hires,omitempty" validate:"gte=0"`
	ExperienceLevel    ExperienceLevel `json:"experience_level,omitempty"`
}

// HasSalaryRange reports whether the listing publishes a usable salary range.
func (j *JobListing) HasSalaryRange() bool {
	return j.SalaryMin > 0 && j.SalaryMax > 0
}

// SalaryMidpoint returns the midpoint of the published range, or zero when
// the range is not published.
func (j *JobListing) SalaryMidpoint() float64 {
	if !j.HasSalaryRange() {
		return 0
	}
	return (j.SalaryMin + j.SalaryMax) / 2
}

// Validate checks the job listing for structural problems that cannot be
// resolved to a neutral default: negative or inverted salary ranges, blank
// required-skill identifiers, unknown enum values.
func (j *JobListing) Validate() error {
	validate := validator.New()
	if err := validate.Struct(j); err != nil {
		return &MalformedInputError{Entity: "job", ID: j.ID.String(), Cause: err}
	}
	if j.SalaryMin > 0 && j.SalaryMax > 0 && j.SalaryMax < j.SalaryMin {
		return &MalformedInputError{
			Entity: "job",
			ID:     j.ID.String(),
			Cause:  fmt.Errorf("salary_max %.0f below salary_min %.0f", j.SalaryMax, j.SalaryMin),
		}
	}
	for i, skill := range j.RequiredSkills {
		if strings.TrimSpace(skill) == "" {
			return &MalformedInputError{
				Entity: "job",
				ID:     j.ID.String(),
				Cause:  fmt.Errorf("required_skills[%d] is blank", i),
			}
		}
	}
	if !j.ExperienceLevel.IsValid() {
		return &MalformedInputError{
			Entity: "job",
			ID:     j.ID.String(),
			Cause:  fmt.Errorf("unknown experience_level %q", j.ExperienceLevel),
		}
	}
	if j.CompanySize != "" {
		if _, ok := j.CompanySize.Order(); !ok {
			return &MalformedInputError{
				Entity: "job",
				ID:     j.ID.String(),
				Cause:  fmt.Errorf("unknown company_size %q", j.CompanySize),
			}
		}
	}
	return nil
}
