package processor

import (
	"github.com/nguyentantai21042004/silence-align/internal/audio"
	"github.com/nguyentantai21042004/silence-align/internal/detect"
	"github.com/nguyentantai21042004/silence-align/internal/logger"
	"github.com/nguyentantai21042004/silence-align/internal/nonspeech"
	"github.com/nguyentantai21042004/silence-align/internal/srt"
)

type implProcessor struct {
	detector  detect.Detector
	audio     audio.Toolkit
	subtitles srt.FileStore
	nonspeech nonspeech.Extractor
	logger    logger.Logger
}

// New creates a new Processor instance
func New(det detect.Detector, tk audio.Toolkit, store srt.FileStore, ex nonspeech.Extractor, log logger.Logger) Processor {
	return &implProcessor{
		detector:  det,
		audio:     tk,
		subtitles: store,
		nonspeech: ex,
		logger:    log,
	}
}
