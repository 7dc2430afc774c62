package resumes

import "encoding/json"

// Normalize coerces raw model output into a ResumeDocument that always
// satisfies the response schema. It never fails: output that cannot be parsed
// as a JSON object collapses to a fallback document seeded with the request's
// skill list, and individual fields that carry the wrong type are replaced
// with safe defaults.
//
// Experience entries get their responsibilities repaired to a sequence;
// education entries are converted as-is with no equivalent repair. The
// asymmetry is deliberate and pinned by tests.
func Normalize(raw string, req GenerationRequest) ResumeDocument {
	var top map[string]any
	if err := json.Unmarshal([]byte(raw), &top); err != nil || top == nil {
		return fallbackDocument(req)
	}

	doc := ResumeDocument{
		Name:       asString(top["name"]),
		Email:      asString(top["email"]),
		Phone:      asString(top["phone"]),
		Summary:    asString(top["summary"]),
		Experience: normalizeExperience(top["experience"]),
		Education:  normalizeEducation(top["education"]),
		Skills:     asStringSlice(top["skills"]),
	}
	if len(doc.Skills) == 0 {
		doc.Skills = req.Skills
	}
	return doc
}

// fallbackDocument is the minimal document substituted when upstream output is
// unparseable.
func fallbackDocument(req GenerationRequest) ResumeDocument {
	return ResumeDocument{
		Experience: []ExperienceItem{},
		Education:  []EducationItem{},
		Skills:     req.Skills,
	}
}

func normalizeExperience(v any) []ExperienceItem {
	items, _ := v.([]any)
	out := make([]ExperienceItem, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, ExperienceItem{
			JobTitle:         asString(entry["job_title"]),
			Company:          asString(entry["company"]),
			Location:         asOptionalString(entry["location"]),
			StartDate:        asOptionalString(entry["start_date"]),
			EndDate:          asOptionalString(entry["end_date"]),
			Responsibilities: asStringSlice(entry["responsibilities"]),
		})
	}
	return out
}

func normalizeEducation(v any) []EducationItem {
	items, _ := v.([]any)
	out := make([]EducationItem, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, EducationItem{
			Degree:         asString(entry["degree"]),
			Institution:    asString(entry["institution"]),
			Location:       asOptionalString(entry["location"]),
			GraduationYear: asGraduationYear(entry["graduation_year"]),
		})
	}
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asOptionalString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// asStringSlice keeps the string members of a sequence and maps anything that
// is not a sequence to an empty one.
func asStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func asGraduationYear(v any) *int {
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	year := int(f)
	return &year
}
