package extract

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// strategy converts raw file bytes into plain text for one format.
type strategy func(data []byte) (string, error)

// strategies is the format registry, keyed by lowercase filename extension.
// Extensions without an entry fall back to raw UTF-8 decoding.
var strategies = map[string]strategy{
	".pdf":  extractPDF,
	".docx": extractDOCX,
}

// Text pulls plain text out of an uploaded file. It never fails: unsupported
// formats decode as UTF-8, parser errors and panics fall back to UTF-8, and
// anything that still looks like binary leakage comes back as "". Callers
// must treat "" as "no usable text", not "empty file".
func Text(data []byte, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if fn, ok := strategies[ext]; ok {
		text, err := runStrategy(fn, data)
		if err == nil {
			text = strings.TrimSpace(text)
			if IsBinaryGarbage(text) {
				return ""
			}
			return text
		}
		// Parser failed; fall through to the raw decode below.
	}

	text := strings.TrimSpace(strings.ToValidUTF8(string(data), "�"))
	if IsBinaryGarbage(text) {
		return ""
	}
	return text
}

// runStrategy shields callers from parser panics; the PDF reader in
// particular can panic on malformed cross-reference tables.
func runStrategy(fn strategy, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extractor panic: %v", r)
		}
	}()
	return fn(data)
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML flattens word/document.xml markup to text, inserting newlines
// at paragraph and line-break boundaries.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
