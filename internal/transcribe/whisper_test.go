package transcribe

import "testing"

func TestParseWhisperOutput(t *testing.T) {
	data := []byte(`{
  "systeminfo": "AVX = 1 | NEON = 0",
  "result": {"language": "en"},
  "transcription": [
    {"timestamps": {"from": "00:00:00,000", "to": "00:00:01,500"}, "offsets": {"from": 0, "to": 1500}, "text": " Hello there."},
    {"timestamps": {"from": "00:00:01,500", "to": "00:00:03,000"}, "offsets": {"from": 1500, "to": 3000}, "text": " General Kenobi."},
    {"timestamps": {"from": "00:00:03,000", "to": "00:00:03,200"}, "offsets": {"from": 3000, "to": 3200}, "text": "   "}
  ]
}`)

	res, err := ParseWhisperOutput(data)
	if err != nil {
		t.Fatalf("ParseWhisperOutput() error = %v", err)
	}

	if res.Text != "Hello there. General Kenobi." {
		t.Errorf("Text = %q", res.Text)
	}
	if len(res.Segments) != 2 {
		t.Fatalf("len(Segments) = %d, want 2 (blank segment dropped)", len(res.Segments))
	}
	if res.Segments[0].Start != 0 || res.Segments[0].End != 1.5 {
		t.Errorf("Segments[0] span = %v -> %v, want 0 -> 1.5", res.Segments[0].Start, res.Segments[0].End)
	}
	if res.Segments[0].Text != "Hello there." {
		t.Errorf("Segments[0].Text = %q", res.Segments[0].Text)
	}
	if res.Segments[1].Start != 1.5 || res.Segments[1].End != 3 {
		t.Errorf("Segments[1] span = %v -> %v, want 1.5 -> 3", res.Segments[1].Start, res.Segments[1].End)
	}
}

func TestParseWhisperOutputEmpty(t *testing.T) {
	res, err := ParseWhisperOutput([]byte(`{"transcription": []}`))
	if err != nil {
		t.Fatalf("ParseWhisperOutput() error = %v", err)
	}
	if res.Text != "" {
		t.Errorf("Text = %q, want empty", res.Text)
	}
	if len(res.Segments) != 0 {
		t.Errorf("len(Segments) = %d, want 0", len(res.Segments))
	}
}

func TestParseWhisperOutputMalformed(t *testing.T) {
	if _, err := ParseWhisperOutput([]byte("this is not JSON")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
