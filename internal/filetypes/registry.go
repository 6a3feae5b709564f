// Package filetypes maintains the catalog of known file-type tags.
// The catalog ships embedded in the binary so the server has no
// runtime file dependency for it.
package filetypes

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/filetypes.yaml
var configFiles embed.FS

// FileType describes one known file-type tag.
type FileType struct {
	Tag        string   `yaml:"tag"`
	Label      string   `yaml:"label"`
	Category   string   `yaml:"category"`
	Extensions []string `yaml:"extensions"`
}

type catalog struct {
	Types []FileType `yaml:"types"`
}

// Registry answers file-type lookups by tag or file extension.
type Registry struct {
	mu    sync.RWMutex
	byTag map[string]FileType
	byExt map[string]FileType
	order []string
}

// NewRegistry loads the embedded catalog.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/filetypes.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded file-type catalog: %w", err)
	}

	var cat catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("unmarshal file-type catalog: %w", err)
	}

	r := &Registry{
		byTag: make(map[string]FileType, len(cat.Types)),
		byExt: make(map[string]FileType),
	}
	for _, ft := range cat.Types {
		if ft.Tag == "" {
			return nil, fmt.Errorf("file-type catalog entry with empty tag")
		}
		r.byTag[ft.Tag] = ft
		r.order = append(r.order, ft.Tag)
		for _, ext := range ft.Extensions {
			r.byExt[strings.ToLower(ext)] = ft
		}
	}
	return r, nil
}

// Lookup returns the catalog entry for a tag.
func (r *Registry) Lookup(tag string) (FileType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ft, ok := r.byTag[tag]
	return ft, ok
}

// Known reports whether a tag is in the catalog.
func (r *Registry) Known(tag string) bool {
	_, ok := r.Lookup(tag)
	return ok
}

// Detect maps a file name to a file-type tag by extension. Unknown
// extensions fall back to "other".
func (r *Registry) Detect(filename string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ft, ok := r.byExt[strings.ToLower(filepath.Ext(filename))]; ok {
		return ft.Tag
	}
	return "other"
}

// Tags returns all known tags in catalog order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}
