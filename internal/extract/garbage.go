package extract

import "strings"

const (
	pdfMagic = "%PDF-"

	// controlCharRatioLimit is a heuristic cutoff, not a guarantee: text whose
	// control-character density exceeds it is assumed to be binary leakage.
	controlCharRatioLimit = 0.15
)

// IsBinaryGarbage reports whether extracted text looks like raw container
// bytes rather than readable content. Empty text is not garbage; callers
// treat "" as "no content" on their own.
func IsBinaryGarbage(text string) bool {
	if text == "" {
		return false
	}
	if strings.HasPrefix(text, pdfMagic) {
		return true
	}

	control := 0
	total := 0
	for _, r := range text {
		total++
		if r < 32 && r != '\t' && r != '\n' && r != '\r' {
			control++
		}
	}
	return float64(control)/float64(total) > controlCharRatioLimit
}
