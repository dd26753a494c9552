package generate

// Result shapes returned by the capability orchestrators. Every field is
// nullable or empty-defaulted: callers always receive a well-formed object,
// even when the provider fails or returns nothing parseable.

// SummaryResult is the résumé-evaluation output.
type SummaryResult struct {
	Summary *string `json:"summary"`
}

// OptimizeResult is the job-targeted résumé optimization output.
type OptimizeResult struct {
	OptimizedResumeMarkdown *string  `json:"optimizedResumeMarkdown"`
	OriginalScore           *int     `json:"originalScore"`
	OptimizedScore          *int     `json:"optimizedScore"`
	Strengths               []string `json:"strengths"`
	Gaps                    []string `json:"gaps"`
	BehavioralAnalysis      *string  `json:"behavioralAnalysis"`
}

// ResumeChanges itemizes what a rewrite did to the original document.
type ResumeChanges struct {
	Added       []string `json:"added"`
	Removed     []string `json:"removed"`
	Reorganized []string `json:"reorganized"`
}

// RewriteResult is the from-scratch résumé rewrite output.
type RewriteResult struct {
	NewResume   *string       `json:"newResume"`
	Changes     ResumeChanges `json:"changes"`
	Explanation *string       `json:"explanation"`
}

// CoverLetterResult is the cover-letter output.
type CoverLetterResult struct {
	CoverLetterMarkdown *string `json:"coverLetterMarkdown"`
}

// InterviewQA is one simulated interview exchange.
type InterviewQA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// InterviewResult is the interview-simulation output.
type InterviewResult struct {
	QA                   []InterviewQA `json:"qa"`
	InterviewerQuestions []string      `json:"interviewerQuestions"`
}

func emptyOptimizeResult() OptimizeResult {
	return OptimizeResult{Strengths: []string{}, Gaps: []string{}}
}

func emptyRewriteResult() RewriteResult {
	return RewriteResult{
		Changes: ResumeChanges{Added: []string{}, Removed: []string{}, Reorganized: []string{}},
	}
}

func emptyInterviewResult() InterviewResult {
	return InterviewResult{QA: []InterviewQA{}, InterviewerQuestions: []string{}}
}
