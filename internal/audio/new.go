package audio

import (
	"github.com/nguyentantai21042004/silence-align/internal/logger"
	"github.com/nguyentantai21042004/silence-align/pkg/executor"
)

type implToolkit struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Toolkit backed by ffmpeg and ffprobe.
func New(exec executor.Executor, log logger.Logger) Toolkit {
	return &implToolkit{
		executor: exec,
		logger:   log,
	}
}
