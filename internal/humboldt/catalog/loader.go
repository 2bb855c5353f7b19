// ============================================================================
// meinCAMPUSWERK (mCW) - Studierendenverwaltung
// ============================================================================
//
// Package:     catalog
// Description: YAML catalog loader with hot-reload support
// License:     MIT
// ============================================================================

package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/msto63/mCW/pkg/core/logging"
	"gopkg.in/yaml.v3"
)

// Loader manages loading and hot-reloading of catalog documents from a
// directory. Documents are keyed by their source file path.
type Loader struct {
	mu         sync.RWMutex
	documents  map[string]*Document // source file -> document
	catalogDir string
	debounce   time.Duration
	watcher    *fsnotify.Watcher
	logger     *logging.Logger
	onChange   func(path string, doc *Document) // Callback when a document changes
	onDelete   func(path string)                // Callback when a document is deleted
	stopCh     chan struct{}
	running    bool
}

// NewLoader creates a new catalog loader
func NewLoader(catalogDir string) *Loader {
	return &Loader{
		documents:  make(map[string]*Document),
		catalogDir: catalogDir,
		debounce:   500 * time.Millisecond,
		logger:     logging.New("catalog"),
		stopCh:     make(chan struct{}),
	}
}

// SetDebounce overrides the reload debounce interval
func (l *Loader) SetDebounce(d time.Duration) {
	if d > 0 {
		l.debounce = d
	}
}

// SetOnChange sets the callback for when a document is loaded or updated
func (l *Loader) SetOnChange(fn func(path string, doc *Document)) {
	l.onChange = fn
}

// SetOnDelete sets the callback for when a document is deleted
func (l *Loader) SetOnDelete(fn func(path string)) {
	l.onDelete = fn
}

// LoadAll loads all catalog YAML files from the directory
func (l *Loader) LoadAll() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Ensure directory exists
	if err := os.MkdirAll(l.catalogDir, 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	// Find all YAML files
	files, err := filepath.Glob(filepath.Join(l.catalogDir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("failed to list catalog files: %w", err)
	}

	// Also check .yml extension
	ymlFiles, _ := filepath.Glob(filepath.Join(l.catalogDir, "*.yml"))
	files = append(files, ymlFiles...)

	if len(files) == 0 {
		l.logger.Info("No catalog files found in directory", "dir", l.catalogDir)
		return nil
	}

	// Load each file
	loadedCount := 0
	for _, file := range files {
		doc, err := l.loadFile(file)
		if err != nil {
			l.logger.Warn("Failed to load catalog file", "file", file, "error", err)
			continue
		}

		l.documents[file] = doc
		loadedCount++
		l.logger.Info("Catalog document loaded",
			"file", filepath.Base(file),
			"records", doc.RecordCount(),
		)
	}

	l.logger.Info("Catalog loaded from directory", "count", loadedCount, "dir", l.catalogDir)
	return nil
}

// loadFile loads a single YAML file
func (l *Loader) loadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	// Apply defaults
	doc.Defaults()

	// Validate
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	// Set internal tracking
	doc.SourceFile = path
	doc.LoadedAt = time.Now()

	return &doc, nil
}

// Get returns a document by its source file path
func (l *Loader) Get(path string) (*Document, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	doc, ok := l.documents[path]
	return doc, ok
}

// GetAll returns all loaded documents ordered by source file path
func (l *Loader) GetAll() []*Document {
	l.mu.RLock()
	defer l.mu.RUnlock()

	docs := make([]*Document, 0, len(l.documents))
	for _, doc := range l.documents {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].SourceFile < docs[j].SourceFile
	})
	return docs
}

// StartWatching starts the file watcher for hot-reload
func (l *Loader) StartWatching(ctx context.Context) error {
	if l.running {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	l.watcher = watcher

	// Watch the catalog directory
	if err := l.watcher.Add(l.catalogDir); err != nil {
		l.watcher.Close()
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	l.running = true
	l.logger.Info("Started watching for catalog changes", "dir", l.catalogDir)

	go l.watchLoop(ctx)

	return nil
}

// watchLoop handles file system events
func (l *Loader) watchLoop(ctx context.Context) {
	defer func() {
		l.running = false
		if l.watcher != nil {
			l.watcher.Close()
		}
	}()

	// Debounce map to prevent multiple reloads for the same file
	debounce := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping catalog watcher (context cancelled)")
			return

		case <-l.stopCh:
			l.logger.Info("Stopping catalog watcher (stop signal)")
			return

		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}

			// Only process YAML files
			if !isYAMLFile(event.Name) {
				continue
			}

			// Debounce: skip if we just processed this file
			if lastTime, exists := debounce[event.Name]; exists {
				if time.Since(lastTime) < l.debounce {
					continue
				}
			}
			debounce[event.Name] = time.Now()

			l.handleFileEvent(event)

		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			l.logger.Error("Watcher error", "error", err)
		}
	}
}

// handleFileEvent processes a single file event
func (l *Loader) handleFileEvent(event fsnotify.Event) {
	fileName := filepath.Base(event.Name)

	switch {
	case event.Op&fsnotify.Create == fsnotify.Create || event.Op&fsnotify.Write == fsnotify.Write:
		// File created or modified - reload it
		l.logger.Info("Catalog file changed, reloading", "file", fileName, "op", event.Op.String())

		doc, err := l.loadFile(event.Name)
		if err != nil {
			l.logger.Error("Failed to reload catalog file", "file", fileName, "error", err)
			return
		}

		l.mu.Lock()
		l.documents[event.Name] = doc
		l.mu.Unlock()

		l.logger.Info("Catalog document reloaded", "file", fileName, "records", doc.RecordCount())

		if l.onChange != nil {
			l.onChange(event.Name, doc)
		}

	case event.Op&fsnotify.Remove == fsnotify.Remove || event.Op&fsnotify.Rename == fsnotify.Rename:
		l.mu.Lock()
		_, existed := l.documents[event.Name]
		delete(l.documents, event.Name)
		l.mu.Unlock()

		if existed {
			l.logger.Info("Catalog document removed", "file", fileName)

			if l.onDelete != nil {
				l.onDelete(event.Name)
			}
		}
	}
}

// StopWatching stops the file watcher
func (l *Loader) StopWatching() {
	if l.running {
		close(l.stopCh)
	}
}

// GetDirectory returns the catalog directory path
func (l *Loader) GetDirectory() string {
	return l.catalogDir
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
