package generate

import (
	_ "embed"
	"strings"
)

// Prompt templates live as plain text files so they can be tuned without
// touching Go code. {{RESUME_TEXT}} and {{JOB_DESCRIPTION}} are substituted
// at request time.

var (
	//go:embed prompts/summary.txt
	summaryTemplate string

	//go:embed prompts/optimize.txt
	optimizeTemplate string

	//go:embed prompts/new_resume.txt
	newResumeTemplate string

	//go:embed prompts/cover_letter.txt
	coverLetterTemplate string

	//go:embed prompts/interview.txt
	interviewTemplate string
)

// lengthEscalation is appended to the prompt on the single retry taken when
// the generated document misses its line-count bounds.
const lengthEscalation = `CRITICAL: your previous answer violated the length requirement.
The résumé body MUST contain between 20 and 50 non-empty lines. Regenerate
the full JSON object, same shape, respecting that limit exactly.`

func buildPrompt(template, resumeText, jobDescription string) string {
	r := strings.NewReplacer(
		"{{RESUME_TEXT}}", resumeText,
		"{{JOB_DESCRIPTION}}", jobDescription,
	)
	return r.Replace(template)
}
