package fields

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestEmailReturnsFirstMatch(t *testing.T) {
	text := "Contact jane.doe+cv@example.com or backup john@other.org for details."
	got := Email(text)
	if got != "jane.doe+cv@example.com" {
		t.Fatalf("expected first email, got %q", got)
	}
}

func TestEmailAbsent(t *testing.T) {
	cases := []string{
		"no contact details here",
		"almost an email: jane@@example..",
		"",
	}
	for _, text := range cases {
		if got := Email(text); got != "" {
			t.Fatalf("expected no email in %q, got %q", text, got)
		}
	}
}

func TestPhoneMatchesCommonShapes(t *testing.T) {
	cases := map[string]string{
		"Call (555) 123-4567 today": "(555) 123-4567",
		"Cell: 555.123.4567":        "555.123.4567",
		"Intl +1-555-123-4567":      "+1-555-123-4567",
		"Plain 555 123 4567":        "555 123 4567",
	}
	for text, want := range cases {
		if got := Phone(text); got != want {
			t.Fatalf("Phone(%q) = %q, want %q", text, got, want)
		}
	}
}

func TestPhoneAbsent(t *testing.T) {
	if got := Phone("no digits to speak of"); got != "" {
		t.Fatalf("expected no phone, got %q", got)
	}
}

func TestSkillsIntersectsVocabulary(t *testing.T) {
	tokens := []string{"I", "know", "Python", ",", "Java", "and", "Docker", "."}
	got := Skills(tokens)
	want := []string{"docker", "java", "python"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSkillsStripsTokenPunctuation(t *testing.T) {
	got := Skills([]string{"Docker.", "(python)", "JAVA,"})
	want := []string{"docker", "java", "python"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSkillsNoVocabularyTerms(t *testing.T) {
	got := Skills([]string{"gardening", "painting", "chess"})
	if len(got) != 0 {
		t.Fatalf("expected empty skill set, got %v", got)
	}
}

func TestSkillsDeduplicates(t *testing.T) {
	got := Skills([]string{"python", "Python", "PYTHON"})
	want := []string{"python"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEducationFindsDegreeContext(t *testing.T) {
	text := "Jane Doe earned a Bachelor of Science from State University in 2015."
	got := Education(text)
	if len(got) == 0 {
		t.Fatalf("expected a degree match")
	}
	if !strings.Contains(got[0], "Bachelor of Science") {
		t.Fatalf("expected context around the degree, got %q", got[0])
	}
}

func TestEducationContextStaysValidUTF8(t *testing.T) {
	// Multi-byte runes on both sides of the match, sized so the raw
	// byte window would cut through the middle of one.
	text := strings.Repeat("日", 20) + "PhD in Physics " + strings.Repeat("語", 20)
	got := Education(text)
	if len(got) == 0 {
		t.Fatalf("expected a degree match")
	}
	for _, frag := range got {
		if !utf8.ValidString(frag) {
			t.Fatalf("context fragment is not valid UTF-8: %q", frag)
		}
		if !strings.Contains(frag, "PhD") {
			t.Fatalf("expected degree mention in fragment, got %q", frag)
		}
	}
}

func TestEducationAbsent(t *testing.T) {
	if got := Education("ten years of woodworking"); len(got) != 0 {
		t.Fatalf("expected no education matches, got %v", got)
	}
}
