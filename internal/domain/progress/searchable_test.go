package progress

import "testing"

func TestParseSalaryRange(t *testing.T) {
	cases := []struct {
		input   string
		wantMin int
		wantMax int
		wantOK  bool
	}{
		{"80000-120000", 80000, 120000, true},
		{" 80000 - 120000 ", 80000, 120000, true},
		{"0-0", 0, 0, true},
		{"negotiable", 0, 0, false},
		{"80000-", 0, 0, false},
		{"-120000", 0, 0, false},
		{"120000-80000", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tc := range cases {
		min, max, ok := ParseSalaryRange(tc.input)
		if min != tc.wantMin || max != tc.wantMax || ok != tc.wantOK {
			t.Fatalf("ParseSalaryRange(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tc.input, min, max, ok, tc.wantMin, tc.wantMax, tc.wantOK)
		}
	}
}

func TestExtractSearchable_OnlyPopulatedAnswers(t *testing.T) {
	out := ExtractSearchable(DeveloperFormData{
		Location:           "Jakarta",
		PrimaryStack:       "Go",
		SalaryExpectations: "80000-120000",
	})

	if out.Location == nil || *out.Location != "Jakarta" {
		t.Fatalf("expected location Jakarta, got %v", out.Location)
	}
	if out.PrimaryStack == nil || *out.PrimaryStack != "Go" {
		t.Fatalf("expected primary stack Go, got %v", out.PrimaryStack)
	}
	if out.SalaryMin == nil || *out.SalaryMin != 80000 {
		t.Fatalf("expected salary min 80000, got %v", out.SalaryMin)
	}
	if out.SalaryMax == nil || *out.SalaryMax != 120000 {
		t.Fatalf("expected salary max 120000, got %v", out.SalaryMax)
	}
	if out.ExperienceLevel != nil || out.WorkStyle != nil || out.Availability != nil {
		t.Fatal("unanswered fields must not produce updates")
	}
	if out.Skills != nil || out.DomainExperience != nil {
		t.Fatal("empty sets must not produce updates")
	}
}

func TestExtractSearchable_MalformedSalaryLeavesBothBoundsUnset(t *testing.T) {
	out := ExtractSearchable(DeveloperFormData{SalaryExpectations: "negotiable"})
	if out.SalaryMin != nil || out.SalaryMax != nil {
		t.Fatalf("malformed salary produced bounds: min=%v max=%v", out.SalaryMin, out.SalaryMax)
	}
}

func TestExtractSearchable_NormalizesSets(t *testing.T) {
	out := ExtractSearchable(DeveloperFormData{
		SecondarySkills:  []string{" PostgreSQL ", "Redis", "PostgreSQL", "", "  "},
		DomainExperience: []string{"fintech", "fintech"},
	})

	if out.Skills == nil {
		t.Fatal("expected skills update")
	}
	skills := *out.Skills
	if len(skills) != 2 || skills[0] != "PostgreSQL" || skills[1] != "Redis" {
		t.Fatalf("expected trimmed deduplicated skills, got %v", skills)
	}

	if out.DomainExperience == nil {
		t.Fatal("expected domain experience update")
	}
	domains := *out.DomainExperience
	if len(domains) != 1 || domains[0] != "fintech" {
		t.Fatalf("expected deduplicated domains, got %v", domains)
	}
}
