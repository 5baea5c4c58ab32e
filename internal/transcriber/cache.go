package transcriber

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MedDash99/meeting-summarizer/internal/domain"
	"github.com/MedDash99/meeting-summarizer/internal/logger"
)

// Engine is an immutable handle to a loaded whisper model. Inference shells
// out per call, so one handle tolerates concurrent transcriptions.
type Engine struct {
	ID        string
	ModelPath string
}

// Cache memoizes engine handles per model id. Concurrent first-use of one id
// collapses into a single load via singleflight; load failures are returned
// but never cached, so a later Acquire may retry.
type Cache struct {
	mu      sync.RWMutex
	engines map[string]*Engine
	group   singleflight.Group
	load    func(ctx context.Context, opt ModelOption) (*Engine, error)
	logger  logger.Logger
}

// NewCache creates a Cache whose loader ensures the model file exists under
// modelDir, downloading it on first use.
func NewCache(modelDir string, log logger.Logger) *Cache {
	c := &Cache{
		engines: make(map[string]*Engine),
		logger:  log,
	}
	c.load = func(ctx context.Context, opt ModelOption) (*Engine, error) {
		return c.ensureModel(ctx, modelDir, opt)
	}
	return c
}

// Acquire returns the engine for modelID, loading it on first use. At most
// one load per id is in flight at any time.
func (c *Cache) Acquire(ctx context.Context, modelID string) (*Engine, error) {
	c.mu.RLock()
	engine, ok := c.engines[modelID]
	c.mu.RUnlock()
	if ok {
		return engine, nil
	}

	opt, ok := lookupModel(modelID)
	if !ok {
		return nil, domain.E(domain.KindValidation, "unknown model %q", modelID)
	}

	v, err, _ := c.group.Do(modelID, func() (interface{}, error) {
		// Re-check under the flight: a previous winner may have stored it.
		c.mu.RLock()
		cached, ok := c.engines[modelID]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		loaded, err := c.load(ctx, opt)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.engines[modelID] = loaded
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, domain.WrapErr(domain.KindModelLoad, err, "load model %s", modelID)
	}

	return v.(*Engine), nil
}

// ensureModel resolves the on-disk model file, downloading it if absent.
func (c *Cache) ensureModel(ctx context.Context, modelDir string, opt ModelOption) (*Engine, error) {
	modelPath := filepath.Join(modelDir, opt.FileName)
	if _, err := os.Stat(modelPath); err == nil {
		return &Engine{ID: opt.ID, ModelPath: modelPath}, nil
	}

	if err := os.MkdirAll(modelDir, 0755); err != nil {
		return nil, fmt.Errorf("create model dir: %w", err)
	}

	c.logger.Info(ctx, "Downloading model %s from %s", opt.ID, opt.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opt.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download model: unexpected status %s", resp.Status)
	}

	// Write to a partial file first so an interrupted download never leaves
	// a truncated model behind.
	partPath := modelPath + ".part"
	out, err := os.Create(partPath)
	if err != nil {
		return nil, fmt.Errorf("create model file: %w", err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(partPath)
		return nil, fmt.Errorf("write model file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(partPath)
		return nil, fmt.Errorf("close model file: %w", err)
	}

	if err := os.Rename(partPath, modelPath); err != nil {
		return nil, fmt.Errorf("finalize model file: %w", err)
	}

	c.logger.Info(ctx, "Model %s ready at %s", opt.ID, modelPath)
	return &Engine{ID: opt.ID, ModelPath: modelPath}, nil
}
