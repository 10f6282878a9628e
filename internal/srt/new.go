package srt

import "github.com/nguyentantai21042004/silence-align/internal/logger"

type implFileStore struct {
	logger logger.Logger
}

// New creates a new FileStore instance
func New(log logger.Logger) FileStore {
	return &implFileStore{logger: log}
}
