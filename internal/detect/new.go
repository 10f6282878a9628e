package detect

import (
	"github.com/nguyentantai21042004/silence-align/internal/logger"
	"github.com/nguyentantai21042004/silence-align/pkg/executor"
)

type implDetector struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Detector backed by the auditok command-line splitter.
func New(exec executor.Executor, log logger.Logger) Detector {
	return &implDetector{
		executor: exec,
		logger:   log,
	}
}
