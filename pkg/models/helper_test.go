package models

import "testing"

func TestSanitizeForGemini(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"basic png", "image/png", "png"},
		{"png with params", "image/png; charset=binary", "png"},
		{"double prefix", "image/image/png", "png"},
		{"jpeg alias", "IMAGE/JPG", "jpeg"},
		{"unsupported", "application/pdf", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitizeForGemini(tc.input); got != tc.want {
				t.Fatalf("sanitizeForGemini(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitizeForAnthropic(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"basic jpeg", "image/jpeg", "image/jpeg"},
		{"jpeg alias", "image/jpg", "image/jpeg"},
		{"with params", "image/png; something", "image/png"},
		{"double prefix", "image/image/webp", "image/webp"},
		{"unsupported", "video/mp4", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitizeForAnthropic(tc.input); got != tc.want {
				t.Fatalf("sanitizeForAnthropic(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSplitPartsDropsBlankText(t *testing.T) {
	texts, images := splitParts([]Part{
		Text("prompt"),
		Text("   "),
		Image("image/jpeg", []byte{1}),
		Text("tail"),
	})
	if len(texts) != 2 || texts[0] != "prompt" || texts[1] != "tail" {
		t.Fatalf("unexpected texts: %#v", texts)
	}
	if len(images) != 1 || images[0].MIME != "image/jpeg" {
		t.Fatalf("unexpected images: %#v", images)
	}
}
