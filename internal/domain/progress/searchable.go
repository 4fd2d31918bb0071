package progress

import (
	"strconv"
	"strings"
)

// ParseSalaryRange parses a "<min>-<max>" expectation string into numeric
// bounds. Anything malformed ("negotiable", "80000-", inverted bounds) yields
// ok=false and neither bound set; a partial result is never produced.
func ParseSalaryRange(value string) (min int, max int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(value), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	max, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	if min < 0 || max < 0 || min > max {
		return 0, 0, false
	}

	return min, max, true
}

// ExtractSearchable derives the denormalized search columns from a developer
// form snapshot. Only populated answers produce updates; absent answers leave
// the stored projection untouched.
func ExtractSearchable(form DeveloperFormData) UpdateFields {
	var out UpdateFields

	if v := strings.TrimSpace(form.Location); v != "" {
		out.Location = &v
	}
	if v := strings.TrimSpace(form.PrimaryStack); v != "" {
		out.PrimaryStack = &v
	}
	if v := strings.TrimSpace(form.ExperienceLevel); v != "" {
		out.ExperienceLevel = &v
	}
	if v := strings.TrimSpace(form.WorkStyle); v != "" {
		out.WorkStyle = &v
	}
	if v := strings.TrimSpace(form.Availability); v != "" {
		out.Availability = &v
	}
	if min, max, ok := ParseSalaryRange(form.SalaryExpectations); ok {
		out.SalaryMin = &min
		out.SalaryMax = &max
	}
	if skills := normalizeSet(form.SecondarySkills); len(skills) > 0 {
		out.Skills = &skills
	}
	if domains := normalizeSet(form.DomainExperience); len(domains) > 0 {
		out.DomainExperience = &domains
	}

	return out
}

func normalizeSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
