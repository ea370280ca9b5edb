package pipeline

import (
	"github.com/kevinzjpeng/voice-record/internal/config"
	"github.com/kevinzjpeng/voice-record/internal/logger"
	"github.com/kevinzjpeng/voice-record/internal/transcribe"
)

type implPipeline struct {
	cfg         *config.Config
	transcriber transcribe.Transcriber
	prober      DurationProber
	logger      logger.Logger
}

// New creates a new Pipeline instance. prober may be nil, in which case
// discovered inputs carry no duration hint.
func New(cfg *config.Config, tr transcribe.Transcriber, prober DurationProber, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		transcriber: tr,
		prober:      prober,
		logger:      log,
	}
}
