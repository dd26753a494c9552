package generate

import (
	"context"

	"careerpilot-backend/internal/llm"
)

// lengthContract bounds the non-empty line count of a generated document.
// Full-résumé capabilities carry one so the model cannot hand back a two-line
// stub or a novel.
type lengthContract struct {
	MinLines int
	MaxLines int
}

var resumeLength = lengthContract{MinLines: 20, MaxLines: 50}

func (c lengthContract) satisfiedBy(primary *string) bool {
	if primary == nil {
		return false
	}
	n := countNonEmptyLines(*primary)
	return n >= c.MinLines && n <= c.MaxLines
}

// completeWithContract runs a completion whose primary text field must meet
// a length contract. At most two attempts are made: the base prompt, then,
// if the first result is missing or out of bounds, the prompt with the
// escalation instruction appended. A second attempt that parses is preferred
// over a failed first attempt even when it is still out of bounds; otherwise
// the first attempt's partial result is kept. The first attempt's raw text
// is returned alongside so callers can apply schema-level raw fallbacks.
func completeWithContract[T any](
	ctx context.Context,
	client llm.Client,
	prompt, escalation string,
	opts llm.Options,
	contract lengthContract,
	normalize func(string) (T, *string),
) (T, string, error) {
	raw, err := client.Complete(ctx, prompt, opts)
	if err != nil {
		var zero T
		return zero, "", err
	}
	result, primary := normalize(raw)
	if contract.satisfiedBy(primary) {
		return result, raw, nil
	}

	retryRaw, retryErr := client.Complete(ctx, prompt+"\n\n"+escalation, opts)
	if retryErr != nil {
		return result, raw, nil
	}
	retryResult, retryPrimary := normalize(retryRaw)
	if retryPrimary != nil {
		return retryResult, raw, nil
	}
	return result, raw, nil
}
