package wizard

// Backend enum spellings per form field. UI widgets submit the lowercase keys;
// the persistence layer stores the exact backend strings.
var backendEnums = map[string]map[string]string{
	"structure_preference": {
		"structured": "Structured",
		"flexible":   "Flexible",
		"hybrid":     "Hybrid",
	},
	"pace_of_work": {
		"fast":       "Fast",
		"moderate":   "Moderate",
		"deliberate": "Deliberate",
	},
	"team_age_composition": {
		"junior_heavy": "Junior Heavy",
		"balanced":     "Balanced",
		"senior_heavy": "Senior Heavy",
	},
	"work_style": {
		"remote": "Remote",
		"hybrid": "Hybrid",
		"onsite": "On-site",
	},
	"availability_status": {
		"available":      "available",
		"open_to_offers": "open_to_offers",
		"unavailable":    "unavailable",
	},
}

// MapEnum translates a UI enum key into the backend spelling for the field.
// It is total: an unknown field or value passes through unchanged with
// found=false so callers can log a warning without failing the save.
func MapEnum(field, value string) (string, bool) {
	table, ok := backendEnums[field]
	if !ok {
		return value, false
	}
	mapped, ok := table[value]
	if !ok {
		return value, false
	}
	return mapped, true
}

// EnumFields lists the fields with a backend mapping table.
func EnumFields() []string {
	out := make([]string, 0, len(backendEnums))
	for field := range backendEnums {
		out = append(out, field)
	}
	return out
}
