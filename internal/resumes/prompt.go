package resumes

import (
	"encoding/json"
	"fmt"
	"strings"
)

const promptTemplate = `Create a professional resume for the role: %s.
Candidate skills: %s.

- Make the experience realistic and relevant to the job role.
- Include 1-2 experience items and 1 education item.
- Return JSON ONLY with this exact structure.
- The 'skills' array MUST exactly contain the input skills.

JSON structure:
{
  "name": "string",
  "email": "string",
  "phone": "string",
  "summary": "string",
  "experience": [
    {
      "job_title": "string",
      "company": "string",
      "location": "string",
      "start_date": "string",
      "end_date": "string",
      "responsibilities": ["string", "string"]
    }
  ],
  "education": [
    {
      "degree": "string",
      "institution": "string",
      "location": "string",
      "graduation_year": 2024
    }
  ],
  "skills": %s
}`

// BuildPrompt creates the generation prompt for a role and skill list. The
// skill list is embedded twice, once readable and once as the literal JSON
// array, to bias the model toward echoing it back unchanged.
func BuildPrompt(jobRole string, skills []string) string {
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		skillsJSON = []byte("[]")
	}
	return fmt.Sprintf(promptTemplate, jobRole, strings.Join(skills, ", "), skillsJSON)
}
