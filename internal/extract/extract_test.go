package extract

import (
	"math/rand"
	"strings"
	"testing"
)

func TestTextPlainTextPassthrough(t *testing.T) {
	content := "Experienced backend engineer. Node.js, AWS, PostgreSQL."
	got := Text([]byte("  "+content+"\n"), "resume.txt")
	if got != content {
		t.Fatalf("Text = %q, want %q", got, content)
	}
}

func TestTextUnknownExtensionDecodesRaw(t *testing.T) {
	if got := Text([]byte("hello"), "notes.md"); got != "hello" {
		t.Fatalf("Text = %q, want %q", got, "hello")
	}
	if got := Text([]byte("hello"), ""); got != "hello" {
		t.Fatalf("Text with empty filename = %q, want %q", got, "hello")
	}
}

func TestTextEmptyBuffer(t *testing.T) {
	if got := Text(nil, "resume.pdf"); got != "" {
		t.Fatalf("Text(nil) = %q, want empty", got)
	}
	if got := Text([]byte{}, "resume.txt"); got != "" {
		t.Fatalf("Text(empty) = %q, want empty", got)
	}
}

func TestTextRejectsLeakedPDFHeader(t *testing.T) {
	// Raw container bytes must never surface as extracted text, regardless
	// of what follows the magic marker.
	got := Text([]byte("%PDF-1.4 lots of perfectly readable words after the header"), "resume.txt")
	if got != "" {
		t.Fatalf("Text = %q, want empty for leaked PDF header", got)
	}
}

func TestTextMalformedPDFFallsBackToRawDecode(t *testing.T) {
	// Not a valid PDF, so the parser fails; the raw bytes decode as text and
	// pass the garbage check.
	got := Text([]byte("just a text file wearing a pdf extension"), "resume.pdf")
	if got != "just a text file wearing a pdf extension" {
		t.Fatalf("Text = %q", got)
	}
}

func TestTextNeverPanicsOnArbitraryBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	names := []string{"a.pdf", "b.docx", "c.txt", "d.doc", "", "weird.bin"}

	for i := 0; i < 200; i++ {
		buf := make([]byte, rng.Intn(4096))
		rng.Read(buf)
		name := names[i%len(names)]
		// Must return (possibly empty) text, not panic.
		_ = Text(buf, name)
	}
}

func TestTextRandomBinaryClassifiedAsGarbage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	buf := make([]byte, 2048)
	rng.Read(buf)

	if got := Text(buf, "resume.docx"); got != "" {
		t.Fatalf("expected empty text for random bytes, got %d chars", len(got))
	}
}

func TestStripDocxXML(t *testing.T) {
	raw := `<w:document><w:body><w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p></w:body></w:document>`
	got := stripDocxXML(raw)
	want := "First paragraph\nSecond paragraph"
	if got != want {
		t.Fatalf("stripDocxXML = %q, want %q", got, want)
	}
}

func TestStripDocxXMLInvalidMarkupReturnsInput(t *testing.T) {
	raw := "<w:p>unclosed"
	if got := stripDocxXML(raw); !strings.Contains(got, "unclosed") {
		t.Fatalf("stripDocxXML = %q, want original content preserved", got)
	}
}
