package host

import (
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
)

// PublishEntry maps one source tree (or file) to a target path under a tag.
type PublishEntry struct {
	Tag    string `json:"tag"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// ManifestEntry records one published file.
type ManifestEntry struct {
	Tag         string `json:"tag"`
	Source      string `json:"source"`
	Target      string `json:"target"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Publisher holds tagged publish mappings and copies them on demand.
type Publisher struct {
	mu       sync.Mutex
	entries  []PublishEntry
	manifest []ManifestEntry
}

// NewPublisher creates an empty publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Add records a source→target mapping under a tag.
func (p *Publisher) Add(tag, source, target string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = append(p.entries, PublishEntry{Tag: tag, Source: source, Target: target})
}

// Entries returns all mappings, optionally filtered by tag ("" = all).
func (p *Publisher) Entries(tag string) []PublishEntry {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []PublishEntry
	for _, e := range p.entries {
		if tag == "" || e.Tag == tag {
			out = append(out, e)
		}
	}
	return out
}

// Publish copies every mapping under tag ("" = all) and records manifest
// entries with detected content types. Sources that are directories are
// walked recursively; missing sources are skipped.
func (p *Publisher) Publish(tag string) (int, error) {
	var published int

	for _, entry := range p.Entries(tag) {
		info, err := os.Stat(entry.Source)
		if err != nil {
			continue
		}

		if !info.IsDir() {
			if err := p.publishFile(entry.Tag, entry.Source, entry.Target); err != nil {
				return published, err
			}
			published++
			continue
		}

		conf := fastwalk.Config{Follow: false}
		err = fastwalk.Walk(&conf, entry.Source, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			rel, err := filepath.Rel(entry.Source, path)
			if err != nil {
				return err
			}
			if err := p.publishFile(entry.Tag, path, filepath.Join(entry.Target, rel)); err != nil {
				return err
			}
			published++
			return nil
		})
		if err != nil {
			return published, fmt.Errorf("publishing %s: %w", entry.Source, err)
		}
	}

	return published, nil
}

func (p *Publisher) publishFile(tag, source, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}

	contentType := mimetype.Detect(data).String()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.manifest = append(p.manifest, ManifestEntry{
		Tag:         tag,
		Source:      source,
		Target:      target,
		Size:        int64(len(data)),
		ContentType: contentType,
	})
	return nil
}

// Manifest returns the entries recorded by Publish, sorted by target.
func (p *Publisher) Manifest() []ManifestEntry {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := append([]ManifestEntry(nil), p.manifest...)
	sort.Slice(out, func(i, j int) bool { return out[i].Target < out[j].Target })
	return out
}

// WriteManifest writes the publish manifest as JSON.
func (p *Publisher) WriteManifest(path string) error {
	data, err := sonic.MarshalIndent(p.Manifest(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Archive writes every published file into a gzip tarball. Paths inside the
// archive are the targets relative to base ("" keeps them absolute-ish).
func (p *Publisher) Archive(w io.Writer, base string) error {
	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	for _, entry := range p.Manifest() {
		data, err := os.ReadFile(entry.Target)
		if err != nil {
			return fmt.Errorf("archiving %s: %w", entry.Target, err)
		}

		name := entry.Target
		if base != "" {
			if rel, err := filepath.Rel(base, entry.Target); err == nil {
				name = rel
			}
		}

		hdr := &tar.Header{
			Name: filepath.ToSlash(name),
			Mode: 0o644,
			Size: int64(len(data)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if _, err := tw.Write(data); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return err
	}
	return gz.Close()
}
