package watcher

import "context"

// Watcher defines the interface for intake directory monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// IntakeHandler receives the path of a newly arrived audio file after it
// has been moved into the work directory. The handler takes ownership of
// the file.
type IntakeHandler func(ctx context.Context, audioPath string) error
