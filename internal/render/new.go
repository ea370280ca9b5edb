package render

import (
	"github.com/kevinzjpeng/voice-record/internal/logger"
)

type implRenderer struct {
	logger logger.Logger
}

// New creates a Renderer for producing shareable Word documents.
func New(log logger.Logger) Renderer {
	return &implRenderer{logger: log}
}
