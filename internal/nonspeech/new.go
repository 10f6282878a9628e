package nonspeech

import (
	"github.com/nguyentantai21042004/silence-align/internal/audio"
	"github.com/nguyentantai21042004/silence-align/internal/logger"
)

type implExtractor struct {
	audio  audio.Toolkit
	logger logger.Logger
}

// New creates a new Extractor instance
func New(tk audio.Toolkit, log logger.Logger) Extractor {
	return &implExtractor{
		audio:  tk,
		logger: log,
	}
}
