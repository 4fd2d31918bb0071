package wizard

import (
	"strings"

	"github.com/hirepath/hirepath/internal/domain/progress"
)

// Step is one screen of the wizard: a canonical name recorded in
// completed_steps and a human title.
type Step struct {
	Name  string
	Title string
}

const (
	StepAccountSetup    = "account_setup"
	StepIdentity        = "identity_verification"
	StepHardSkills      = "hard_skills"
	StepSoftSkills      = "soft_skills"
	StepWorkPreferences = "work_preferences"

	StepOrganization = "organization"
	StepTeam         = "team"
	StepHiringDetail = "hiring_detail"
)

var developerSteps = []Step{
	{Name: StepAccountSetup, Title: "Account Setup"},
	{Name: StepIdentity, Title: "Identity & Verification"},
	{Name: StepHardSkills, Title: "Hard Skills"},
	{Name: StepSoftSkills, Title: "Soft Skills"},
	{Name: StepWorkPreferences, Title: "Work Preferences"},
}

var clientSteps = []Step{
	{Name: StepOrganization, Title: "Organization"},
	{Name: StepTeam, Title: "Team"},
	{Name: StepHiringDetail, Title: "Hiring Detail"},
}

// Steps returns the fixed ordered step list for a flow. Agency shares the
// client wizard.
func Steps(flow progress.Flow) []Step {
	if flow == progress.FlowDeveloper {
		return append([]Step(nil), developerSteps...)
	}
	return append([]Step(nil), clientSteps...)
}

// ViewIndex converts a persisted 1-based step pointer into a 0-based index
// into Steps. Out-of-range pointers fall back to the first step instead of
// erroring.
func ViewIndex(currentStep, totalSteps int) int {
	if currentStep < 1 || currentStep > totalSteps {
		return 0
	}
	return currentStep - 1
}

// MissingFields returns the required fields of the step at index that the
// accumulated form has not populated yet. An empty result means "Next" is
// allowed.
func MissingFields(flow progress.Flow, index int, form progress.FormData) []string {
	steps := Steps(flow)
	if index < 0 || index >= len(steps) {
		return nil
	}

	if flow == progress.FlowDeveloper {
		var dev progress.DeveloperFormData
		if form.Developer != nil {
			dev = *form.Developer
		}
		return missingDeveloperFields(steps[index].Name, dev)
	}

	var cl progress.ClientFormData
	if form.Client != nil {
		cl = *form.Client
	}
	return missingClientFields(steps[index].Name, cl)
}

func missingDeveloperFields(step string, form progress.DeveloperFormData) []string {
	var missing []string
	require := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	switch step {
	case StepAccountSetup:
		require("full_name", form.FullName)
	case StepIdentity:
		require("identity_doc_type", form.IdentityDocType)
	case StepHardSkills:
		require("primary_stack", form.PrimaryStack)
	case StepSoftSkills:
		require("communication_style", form.CommunicationStyle)
	case StepWorkPreferences:
		require("work_style", form.WorkStyle)
		require("availability", form.Availability)
	}

	return missing
}

func missingClientFields(step string, form progress.ClientFormData) []string {
	var missing []string
	require := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	switch step {
	case StepOrganization:
		require("organization_name", form.OrganizationName)
	case StepTeam:
		require("team_title", form.TeamTitle)
	case StepHiringDetail:
		require("persona_title", form.PersonaTitle)
	}

	return missing
}

// Reduce merges a partial form patch into the accumulated form data for the
// flow. It is pure: blank patch fields never erase previously saved answers,
// and the untouched branch of the union is carried through unchanged.
func Reduce(flow progress.Flow, current progress.FormData, patch progress.FormData) progress.FormData {
	out := current

	if flow == progress.FlowDeveloper {
		if patch.Developer == nil {
			return out
		}
		merged := reduceDeveloper(valueOrZeroDev(current.Developer), *patch.Developer)
		out.Developer = &merged
		return out
	}

	if patch.Client == nil {
		return out
	}
	merged := reduceClient(valueOrZeroClient(current.Client), *patch.Client)
	out.Client = &merged
	return out
}

func reduceDeveloper(current, patch progress.DeveloperFormData) progress.DeveloperFormData {
	out := current
	setString(&out.FullName, patch.FullName)
	setString(&out.Headline, patch.Headline)
	setString(&out.Location, patch.Location)
	setString(&out.IdentityDocType, patch.IdentityDocType)
	if patch.IdentityVerified {
		out.IdentityVerified = true
	}
	setString(&out.PrimaryStack, patch.PrimaryStack)
	if len(patch.SecondarySkills) > 0 {
		out.SecondarySkills = append([]string(nil), patch.SecondarySkills...)
	}
	if len(patch.DomainExperience) > 0 {
		out.DomainExperience = append([]string(nil), patch.DomainExperience...)
	}
	setString(&out.ExperienceLevel, patch.ExperienceLevel)
	setString(&out.CommunicationStyle, patch.CommunicationStyle)
	setString(&out.PaceOfWork, patch.PaceOfWork)
	setString(&out.WorkStyle, patch.WorkStyle)
	setString(&out.SalaryExpectations, patch.SalaryExpectations)
	setString(&out.Availability, patch.Availability)
	return out
}

func reduceClient(current, patch progress.ClientFormData) progress.ClientFormData {
	out := current
	setString(&out.OrganizationName, patch.OrganizationName)
	setString(&out.OrganizationSize, patch.OrganizationSize)
	setString(&out.Industry, patch.Industry)
	setString(&out.TeamTitle, patch.TeamTitle)
	setString(&out.TeamDescription, patch.TeamDescription)
	setString(&out.StructurePreference, patch.StructurePreference)
	setString(&out.PaceOfWork, patch.PaceOfWork)
	setString(&out.TeamAgeComposition, patch.TeamAgeComposition)
	setString(&out.PersonaTitle, patch.PersonaTitle)
	setString(&out.PersonaSeniority, patch.PersonaSeniority)
	setString(&out.PersonaBudget, patch.PersonaBudget)
	return out
}

func setString(dst *string, value string) {
	if strings.TrimSpace(value) != "" {
		*dst = value
	}
}

func valueOrZeroDev(v *progress.DeveloperFormData) progress.DeveloperFormData {
	if v == nil {
		return progress.DeveloperFormData{}
	}
	return *v
}

func valueOrZeroClient(v *progress.ClientFormData) progress.ClientFormData {
	if v == nil {
		return progress.ClientFormData{}
	}
	return *v
}
