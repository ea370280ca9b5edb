package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "default config",
			config:  *Default(),
			wantErr: false,
		},
		{
			name: "missing whisper model path",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "whisper-cli",
				},
			},
			wantErr: true,
		},
		{
			name: "missing whisper binary path",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath: "models/test.bin",
				},
			},
			wantErr: true,
		},
		{
			name: "aws backend without bucket",
			config: Config{
				Transcription: TranscriptionConfig{
					Backend: BackendAWS,
				},
			},
			wantErr: true,
		},
		{
			name: "aws backend with bucket",
			config: Config{
				Transcription: TranscriptionConfig{
					Backend: BackendAWS,
				},
				AWS: AWSConfig{
					Bucket: "my-recordings",
				},
			},
			wantErr: false,
		},
		{
			name: "unknown backend",
			config: Config{
				Transcription: TranscriptionConfig{
					Backend: "azure",
				},
				Whisper: WhisperConfig{
					ModelPath:  "models/test.bin",
					BinaryPath: "whisper-cli",
				},
			},
			wantErr: true,
		},
		{
			name: "language not in recognized list",
			config: Config{
				Transcription: TranscriptionConfig{
					Language: "fr",
				},
				Whisper: WhisperConfig{
					ModelPath:  "models/test.bin",
					BinaryPath: "whisper-cli",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			ModelPath:  "models/test.bin",
			BinaryPath: "whisper-cli",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Transcription.Backend != BackendWhisper {
		t.Errorf("Backend = %v, want %v", cfg.Transcription.Backend, BackendWhisper)
	}
	if cfg.Transcription.Language != "yue" {
		t.Errorf("Language = %v, want yue", cfg.Transcription.Language)
	}
	if cfg.Paths.Audio != "voice-record" {
		t.Errorf("Paths.Audio = %v, want voice-record", cfg.Paths.Audio)
	}
	if cfg.Whisper.Threads != 8 {
		t.Errorf("Threads = %v, want 8", cfg.Whisper.Threads)
	}
	if cfg.FFmpeg.AudioBitrate != "192k" {
		t.Errorf("AudioBitrate = %v, want 192k", cfg.FFmpeg.AudioBitrate)
	}
	if cfg.Watch.SettleMs != 500 {
		t.Errorf("SettleMs = %v, want 500", cfg.Watch.SettleMs)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
transcription:
  language: "en"

whisper:
  model_path: "models/test.bin"
  binary_path: "./whisper-cli"
  threads: 4

paths:
  audio: "recordings"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelPath != "models/test.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Whisper.ModelPath, "models/test.bin")
	}
	if cfg.Whisper.Threads != 4 {
		t.Errorf("Threads = %v, want 4", cfg.Whisper.Threads)
	}
	if cfg.Paths.Audio != "recordings" {
		t.Errorf("Paths.Audio = %v, want recordings", cfg.Paths.Audio)
	}

	// Fields absent from the file keep their defaults
	if cfg.Paths.Transcripts != "transcripts" {
		t.Errorf("Paths.Transcripts = %v, want transcripts", cfg.Paths.Transcripts)
	}
	if cfg.FFmpeg.AudioBitrate != "192k" {
		t.Errorf("AudioBitrate = %v, want 192k", cfg.FFmpeg.AudioBitrate)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte("paths: [not: a: mapping")); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(tmpfile.Name()); err == nil {
		t.Error("Load() should return error for malformed YAML")
	}
}

func TestRecognizesLanguage(t *testing.T) {
	cfg := Default()

	tests := []struct {
		code string
		want bool
	}{
		{"en", true},
		{"yue", true},
		{"zh", true},
		{"fr", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := cfg.RecognizesLanguage(tt.code); got != tt.want {
			t.Errorf("RecognizesLanguage(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
