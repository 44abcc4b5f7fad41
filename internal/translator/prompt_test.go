package translator

import "testing"

func TestBuildPrompt(t *testing.T) {
	expected := `
You are a professional translation engine.

Task:
- Detect the source language automatically.
- Translate the text into Brazilian Portuguese.

Rules:
- Output ONLY the translated text.
- Do NOT mention the source language.
- Do NOT add explanations.
- Do NOT add labels or prefixes.
- Do NOT repeat the input.

Text:
Good morning, team.
`
	if got := buildPrompt("Good morning, team.", "Brazilian Portuguese"); got != expected {
		t.Errorf("buildPrompt() mismatch\n got: %q\nwant: %q", got, expected)
	}
}

func TestAudioExtension(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{name: "m4a", filename: "voice.m4a", expected: ".m4a"},
		{name: "wav", filename: "recording.wav", expected: ".wav"},
		{name: "mixed case kept", filename: "Memo.MP3", expected: ".MP3"},
		{name: "no extension", filename: "blob", expected: ".m4a"},
		{name: "empty", filename: "", expected: ".m4a"},
		{name: "dot only", filename: "weird.", expected: ".m4a"},
		{name: "too long", filename: "file.extension123", expected: ".m4a"},
		{name: "unsafe characters", filename: "clip.m4a;rm", expected: ".m4a"},
		{name: "path in name", filename: "../../etc/clip.ogg", expected: ".ogg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := audioExtension(tt.filename); got != tt.expected {
				t.Errorf("audioExtension(%q) = %q, want %q", tt.filename, got, tt.expected)
			}
		})
	}
}
