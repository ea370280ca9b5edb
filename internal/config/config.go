package config

import "fmt"

// Transcription backends.
const (
	BackendWhisper = "whisper"
	BackendAWS     = "aws"
)

type Config struct {
	Paths         PathsConfig         `yaml:"paths"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Whisper       WhisperConfig       `yaml:"whisper"`
	AWS           AWSConfig           `yaml:"aws"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	Summarizer    SummarizerConfig    `yaml:"summarizer"`
	Watch         WatchConfig         `yaml:"watch"`
	Logging       LoggingConfig       `yaml:"logging"`
}

type PathsConfig struct {
	Audio       string `yaml:"audio"`
	Transcripts string `yaml:"transcripts"`
	Summaries   string `yaml:"summaries"`
	ListFile    string `yaml:"list_file"`
	Temp        string `yaml:"temp"`
}

type TranscriptionConfig struct {
	Backend   string   `yaml:"backend"`
	Language  string   `yaml:"language"`
	Languages []string `yaml:"languages"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type AWSConfig struct {
	Bucket string `yaml:"bucket"`
	Region string `yaml:"region"`
}

type FFmpegConfig struct {
	AudioBitrate string `yaml:"audio_bitrate"`
	SampleRate   int    `yaml:"sample_rate"`
	KeepOriginal bool   `yaml:"keep_original"`
}

type SummarizerConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type WatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
	SettleMs      int `yaml:"settle_ms"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Audio:       "voice-record",
			Transcripts: "transcripts",
			Summaries:   "summaries",
			ListFile:    "changed_files.txt",
		},
		Transcription: TranscriptionConfig{
			Backend:   BackendWhisper,
			Language:  "yue",
			Languages: []string{"en", "yue", "zh"},
		},
		Whisper: WhisperConfig{
			ModelPath:  "models/ggml-large-v3.bin",
			BinaryPath: "whisper-cli",
			Threads:    8,
		},
		AWS: AWSConfig{
			Region: "us-east-1",
		},
		FFmpeg: FFmpegConfig{
			AudioBitrate: "192k",
			SampleRate:   16000,
		},
		Summarizer: SummarizerConfig{
			Model: "gemini-2.5-flash",
		},
		Watch: WatchConfig{
			MaxConcurrent: 1,
			SettleMs:      500,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate fills in defaults for unset fields and rejects combinations the
// pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Paths.Audio == "" {
		c.Paths.Audio = "voice-record"
	}
	if c.Paths.Transcripts == "" {
		c.Paths.Transcripts = "transcripts"
	}
	if c.Paths.Summaries == "" {
		c.Paths.Summaries = "summaries"
	}
	if c.Paths.ListFile == "" {
		c.Paths.ListFile = "changed_files.txt"
	}
	if c.Transcription.Backend == "" {
		c.Transcription.Backend = BackendWhisper
	}
	if c.Transcription.Language == "" {
		c.Transcription.Language = "yue"
	}
	if len(c.Transcription.Languages) == 0 {
		c.Transcription.Languages = []string{"en", "yue", "zh"}
	}
	if c.Whisper.Threads <= 0 {
		c.Whisper.Threads = 8
	}
	if c.AWS.Region == "" {
		c.AWS.Region = "us-east-1"
	}
	if c.FFmpeg.AudioBitrate == "" {
		c.FFmpeg.AudioBitrate = "192k"
	}
	if c.FFmpeg.SampleRate <= 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = "gemini-2.5-flash"
	}
	if c.Watch.MaxConcurrent <= 0 {
		c.Watch.MaxConcurrent = 1
	}
	if c.Watch.SettleMs <= 0 {
		c.Watch.SettleMs = 500
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	switch c.Transcription.Backend {
	case BackendWhisper:
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required")
		}
		if c.Whisper.BinaryPath == "" {
			return fmt.Errorf("whisper.binary_path is required")
		}
	case BackendAWS:
		if c.AWS.Bucket == "" {
			return fmt.Errorf("aws.bucket is required when transcription.backend is %q", BackendAWS)
		}
	default:
		return fmt.Errorf("transcription.backend must be %q or %q, got %q", BackendWhisper, BackendAWS, c.Transcription.Backend)
	}

	if !c.RecognizesLanguage(c.Transcription.Language) {
		return fmt.Errorf("transcription.language %q is not in transcription.languages %v", c.Transcription.Language, c.Transcription.Languages)
	}

	return nil
}

// RecognizesLanguage reports whether code is one of the configured language codes.
func (c *Config) RecognizesLanguage(code string) bool {
	for _, l := range c.Transcription.Languages {
		if l == code {
			return true
		}
	}
	return false
}
