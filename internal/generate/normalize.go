package generate

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Language models wrap JSON in markdown fences, prepend chatty preambles and
// rename keys between runs. The normalizers in this file turn that raw text
// into the fixed result shapes, resolving each field through an ordered alias
// list and defaulting to empty when nothing usable is found.

var codeFenceRE = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)\\s*```")

// stripCodeFences unwraps ```json ... ``` blocks, keeping only the body.
func stripCodeFences(s string) string {
	return strings.TrimSpace(codeFenceRE.ReplaceAllString(s, "$1"))
}

// carve returns the substring between the first open and the last close
// delimiter, inclusive. Returns "" when no balanced pair exists.
func carve(s string, open, close byte) string {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// parseObject extracts a JSON object from raw model output. It tries the
// carved first-{ to last-} span, then the whole cleaned string.
func parseObject(raw string) (map[string]any, bool) {
	cleaned := stripCodeFences(raw)
	for _, candidate := range []string{carve(cleaned, '{', '}'), cleaned} {
		if candidate == "" {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(candidate), &obj); err == nil {
			return obj, true
		}
	}
	return nil, false
}

// parseArray is the array-shaped counterpart of parseObject.
func parseArray(raw string) ([]any, bool) {
	cleaned := stripCodeFences(raw)
	for _, candidate := range []string{carve(cleaned, '[', ']'), cleaned} {
		if candidate == "" {
			continue
		}
		var arr []any
		if err := json.Unmarshal([]byte(candidate), &arr); err == nil {
			return arr, true
		}
	}
	return nil, false
}

// coerceString renders a scalar JSON value as text. Non-scalar values
// collapse to "".
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// lookup resolves the first alias present in obj with a non-nil value.
func lookup(obj map[string]any, aliases ...string) (any, bool) {
	for _, key := range aliases {
		if v, ok := obj[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// stringField resolves a text field, returning nil when every alias is
// absent or empty.
func stringField(obj map[string]any, aliases ...string) *string {
	v, ok := lookup(obj, aliases...)
	if !ok {
		return nil
	}
	s := strings.TrimSpace(coerceString(v))
	if s == "" {
		return nil
	}
	return &s
}

// scoreField resolves a numeric score, rounded and clamped to [0, 100].
// Absent or non-numeric values stay nil rather than becoming zero.
func scoreField(obj map[string]any, aliases ...string) *int {
	v, ok := lookup(obj, aliases...)
	if !ok {
		return nil
	}
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	n := int(math.Round(f))
	if n < 0 {
		n = 0
	}
	if n > 100 {
		n = 100
	}
	return &n
}

// stringListField resolves a list field. Only genuine JSON arrays are
// accepted, never a lone string promoted to a one-element list. Elements are
// coerced to text and blanks dropped.
func stringListField(obj map[string]any, aliases ...string) []string {
	v, ok := lookup(obj, aliases...)
	if !ok {
		return []string{}
	}
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s := strings.TrimSpace(coerceString(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// countNonEmptyLines counts lines with at least one non-whitespace rune.
func countNonEmptyLines(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// normalizeOptimize shapes an optimization response. The second return is
// the primary text body used for length-contract checks.
func normalizeOptimize(raw string) (OptimizeResult, *string) {
	res := emptyOptimizeResult()
	obj, ok := parseObject(raw)
	if !ok {
		return res, nil
	}
	res.OptimizedResumeMarkdown = stringField(obj,
		"optimizedResume", "optimized_resume", "optimizedResumeMarkdown",
		"optimized_resume_markdown", "optimized_resume_text")
	res.OriginalScore = scoreField(obj, "originalScore", "original_score")
	res.OptimizedScore = scoreField(obj, "optimizedScore", "optimized_score")
	res.Strengths = stringListField(obj, "strengths")
	res.Gaps = stringListField(obj, "gaps")
	res.BehavioralAnalysis = stringField(obj,
		"behavioralAnalysis", "behavioral_analysis", "behavioral")
	return res, res.OptimizedResumeMarkdown
}

// normalizeRewrite shapes a from-scratch rewrite response.
func normalizeRewrite(raw string) (RewriteResult, *string) {
	res := emptyRewriteResult()
	obj, ok := parseObject(raw)
	if !ok {
		return res, nil
	}
	res.NewResume = stringField(obj, "newResume", "new_resume", "resume")
	if changes, ok := obj["changes"].(map[string]any); ok {
		res.Changes.Added = stringListField(changes, "added")
		res.Changes.Removed = stringListField(changes, "removed")
		res.Changes.Reorganized = stringListField(changes, "reorganized")
	}
	res.Explanation = stringField(obj, "explanation", "reason", "rationale")
	return res, res.NewResume
}

// normalizeCoverLetter shapes a cover-letter response. The letter itself is
// markdown text, so an unparseable response falls back to the cleaned raw
// body.
func normalizeCoverLetter(raw string) CoverLetterResult {
	var res CoverLetterResult
	if obj, ok := parseObject(raw); ok {
		res.CoverLetterMarkdown = stringField(obj,
			"coverLetter", "cover_letter", "coverLetterMarkdown", "cover_letter_markdown", "letter")
		if res.CoverLetterMarkdown != nil {
			return res
		}
	}
	if cleaned := stripCodeFences(raw); cleaned != "" {
		res.CoverLetterMarkdown = &cleaned
	}
	return res
}

// normalizeInterview shapes an interview-simulation response. Pairs missing
// either side are dropped. A bare top-level array is tolerated and read as
// the QA list.
func normalizeInterview(raw string) InterviewResult {
	res := emptyInterviewResult()
	obj, ok := parseObject(raw)
	if !ok {
		if arr, ok := parseArray(raw); ok {
			res.QA = interviewPairs(arr)
		}
		return res
	}
	if v, ok := lookup(obj, "qa", "questions", "interview"); ok {
		if arr, ok := v.([]any); ok {
			res.QA = interviewPairs(arr)
		}
	}
	res.InterviewerQuestions = stringListField(obj,
		"interviewerQuestions", "questionsForRecruiter", "perguntasParaEntrevistador")
	return res
}

func interviewPairs(arr []any) []InterviewQA {
	out := make([]InterviewQA, 0, len(arr))
	for _, item := range arr {
		pair, ok := item.(map[string]any)
		if !ok {
			continue
		}
		q := stringField(pair, "question", "pergunta")
		a := stringField(pair, "answer", "resposta")
		if q == nil || a == nil {
			continue
		}
		out = append(out, InterviewQA{Question: *q, Answer: *a})
	}
	return out
}
