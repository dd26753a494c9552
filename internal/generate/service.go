package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careerpilot-backend/internal/llm"
	"careerpilot-backend/internal/shared/telemetry"
)

// ErrInvalidInput marks a request rejected before any provider call.
var ErrInvalidInput = errors.New("invalid input")

// Service orchestrates the five generation capabilities. Apart from Summary,
// every capability degrades to an empty-shaped result when the provider is
// unavailable: the caller still gets a well-formed response to render.
type Service struct {
	llm llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{llm: client}
}

func requireText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return trimmed, nil
}

// Summary produces a recruiter-style evaluation of a résumé. Unlike the
// other capabilities it propagates provider failures, since there is no
// useful empty shape to degrade to.
func (s *Service) Summary(ctx context.Context, resumeText string) (SummaryResult, error) {
	text, err := requireText("resumeText", resumeText)
	if err != nil {
		return SummaryResult{}, err
	}
	raw, err := s.llm.Complete(ctx, buildPrompt(summaryTemplate, text, ""), llm.Options{
		Temperature: 0.35,
		MaxTokens:   500,
	})
	if err != nil {
		return SummaryResult{}, fmt.Errorf("summary generation: %w", err)
	}
	var res SummaryResult
	if cleaned := stripCodeFences(raw); cleaned != "" {
		res.Summary = &cleaned
	}
	return res, nil
}

// Optimize rewrites a résumé against a job description and scores both
// versions. The rewritten body carries the 20 to 50 line contract.
func (s *Service) Optimize(ctx context.Context, resumeText, jobDescription string) (OptimizeResult, error) {
	text, err := requireText("resumeText", resumeText)
	if err != nil {
		return emptyOptimizeResult(), err
	}
	job, err := requireText("jobDescription", jobDescription)
	if err != nil {
		return emptyOptimizeResult(), err
	}

	prompt := buildPrompt(optimizeTemplate, text, job)
	result, firstRaw, err := completeWithContract(ctx, s.llm, prompt, lengthEscalation, llm.Options{
		Temperature: 0.15,
		MaxTokens:   2200,
	}, resumeLength, normalizeOptimize)
	if err != nil {
		telemetry.Warn("generate.optimize.unavailable", map[string]any{"error": err.Error()})
		return emptyOptimizeResult(), nil
	}
	// The optimized résumé is the one field whose schema allows a raw-text
	// fallback: a non-JSON answer is still a usable document.
	if result.OptimizedResumeMarkdown == nil {
		if cleaned := stripCodeFences(firstRaw); cleaned != "" {
			result.OptimizedResumeMarkdown = &cleaned
		}
	}
	return result, nil
}

// NewResume rebuilds a résumé from scratch with a change inventory. The
// rebuilt body carries the 20 to 50 line contract. No raw fallback here: a
// change inventory against an unparseable document would be meaningless.
func (s *Service) NewResume(ctx context.Context, resumeText string) (RewriteResult, error) {
	text, err := requireText("resumeText", resumeText)
	if err != nil {
		return emptyRewriteResult(), err
	}

	prompt := buildPrompt(newResumeTemplate, text, "")
	result, _, err := completeWithContract(ctx, s.llm, prompt, lengthEscalation, llm.Options{
		Temperature: 0.25,
		MaxTokens:   2000,
	}, resumeLength, normalizeRewrite)
	if err != nil {
		telemetry.Warn("generate.new_resume.unavailable", map[string]any{"error": err.Error()})
		return emptyRewriteResult(), nil
	}
	return result, nil
}

// CoverLetter writes a cover letter targeting a job description.
func (s *Service) CoverLetter(ctx context.Context, resumeText, jobDescription string) (CoverLetterResult, error) {
	text, err := requireText("resumeText", resumeText)
	if err != nil {
		return CoverLetterResult{}, err
	}
	job, err := requireText("jobDescription", jobDescription)
	if err != nil {
		return CoverLetterResult{}, err
	}

	raw, err := s.llm.Complete(ctx, buildPrompt(coverLetterTemplate, text, job), llm.Options{
		Temperature: 0.4,
		MaxTokens:   800,
	})
	if err != nil {
		telemetry.Warn("generate.cover_letter.unavailable", map[string]any{"error": err.Error()})
		return CoverLetterResult{}, nil
	}
	return normalizeCoverLetter(raw), nil
}

// Interview simulates a role-specific interview: question and answer pairs
// plus questions the candidate should ask back.
func (s *Service) Interview(ctx context.Context, resumeText, jobDescription string) (InterviewResult, error) {
	text, err := requireText("resumeText", resumeText)
	if err != nil {
		return emptyInterviewResult(), err
	}
	job, err := requireText("jobDescription", jobDescription)
	if err != nil {
		return emptyInterviewResult(), err
	}

	raw, err := s.llm.Complete(ctx, buildPrompt(interviewTemplate, text, job), llm.Options{
		Temperature: 0.45,
		MaxTokens:   900,
	})
	if err != nil {
		telemetry.Warn("generate.interview.unavailable", map[string]any{"error": err.Error()})
		return emptyInterviewResult(), nil
	}
	return normalizeInterview(raw), nil
}
