package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	cases := []struct {
		prefix string
		key    string
		want   string
	}{
		{"", "a/b.pdf", "a/b.pdf"},
		{"resumes", "a.pdf", "resumes/a.pdf"},
		{"/resumes/", "/a.pdf", "resumes/a.pdf"},
		{"resumes", "", "resumes"},
	}
	for _, tc := range cases {
		if got := applyPrefix(tc.prefix, tc.key); got != tc.want {
			t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tc.prefix, tc.key, got, tc.want)
		}
	}
}

func TestPublicURLEscapesKeyButKeepsSeparators(t *testing.T) {
	s := &Store{bucket: "cv-bucket", region: "sa-east-1"}

	got := s.publicURL("uploads/170000_my resume.pdf")
	want := "https://cv-bucket.s3.sa-east-1.amazonaws.com/uploads/170000_my%20resume.pdf"
	if got != want {
		t.Fatalf("publicURL = %q, want %q", got, want)
	}
}

func TestPublicURLDefaultsRegion(t *testing.T) {
	s := &Store{bucket: "b"}
	got := s.publicURL("k")
	want := "https://b.s3.us-east-1.amazonaws.com/k"
	if got != want {
		t.Fatalf("publicURL = %q, want %q", got, want)
	}
}
