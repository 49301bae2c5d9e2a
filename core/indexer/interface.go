package indexer

import "context"

type IndexerWorker interface {
	Run(ctx context.Context) error
	Shutdown() error
	ShutdownWithContext(ctx context.Context) error
}

type Processor interface {
	Name() string

	// Process processes the next available unit of work and commits it.
	// Returns false if there is nothing ready to process yet.
	Process(ctx context.Context) (bool, error)

	// Shutdown gracefully stops the processor. It's called after the last Process returned.
	Shutdown(ctx context.Context) error
}
