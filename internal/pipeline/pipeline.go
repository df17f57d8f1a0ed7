package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Ranakb/ai-document-system/internal/catalog"
	"github.com/Ranakb/ai-document-system/internal/classifier"
	"github.com/Ranakb/ai-document-system/internal/extractor"
	"github.com/Ranakb/ai-document-system/internal/loader"
	"github.com/Ranakb/ai-document-system/internal/retrieval"
	"github.com/Ranakb/ai-document-system/pkg/types"
)

// DefaultWorkers bounds concurrent classification when no worker count
// is configured.
const DefaultWorkers = 4

// ReportEntry is the per-document outcome emitted in the JSON report.
type ReportEntry struct {
	FileName   string           `json:"file_name"`
	Category   types.Category   `json:"category"`
	Confidence float64          `json:"confidence"`
	Reason     string           `json:"reason,omitempty"`
	Fields     extractor.Fields `json:"fields"`
}

// Report is the full run outcome: one entry per input document plus
// indexing statistics.
type Report struct {
	Entries []ReportEntry        `json:"documents"`
	Index   retrieval.IndexStats `json:"index"`
}

// Pipeline orchestrates loading, classification, field extraction,
// indexing, and catalog persistence for a directory of documents.
type Pipeline struct {
	classifier *classifier.Engine
	engine     *retrieval.Engine
	catalog    *catalog.Catalog
	workers    int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCatalog persists each report entry to cat as it is produced.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(p *Pipeline) { p.catalog = cat }
}

// WithWorkers sets the classification concurrency limit.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// New creates a Pipeline around a classifier and a retrieval engine.
func New(cls *classifier.Engine, engine *retrieval.Engine, opts ...Option) *Pipeline {
	p := &Pipeline{
		classifier: cls,
		engine:     engine,
		workers:    DefaultWorkers,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes every document in dir: classify concurrently, extract
// fields, index readable text, and persist results. Every input yields a
// report entry; unreadable documents are recorded as Unclassifiable with
// the failure reason and are never indexed.
func (p *Pipeline) Run(ctx context.Context, dir string) (*Report, error) {
	docs, err := loader.LoadDocuments(dir)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	log.Printf("processing %d documents from %s", len(docs), dir)

	entries := make([]ReportEntry, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range docs {
		g.Go(func() error {
			entries[i] = p.processOne(gctx, &docs[i])
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classification interrupted: %w", err)
	}

	// Categories feed chunk metadata, so indexing runs after
	// classification completes.
	stats, err := p.engine.IndexDocuments(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("index documents: %w", err)
	}

	report := &Report{Entries: entries, Index: *stats}
	if p.catalog != nil {
		if err := p.persist(ctx, entries); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// processOne classifies and extracts a single document, mutating
// doc.Category so indexing sees the assigned label.
func (p *Pipeline) processOne(ctx context.Context, doc *types.Document) ReportEntry {
	entry := ReportEntry{
		FileName: doc.FileName,
		Fields:   extractor.Fields{},
	}

	if !doc.Readable {
		doc.Category = types.CategoryUnclassifiable
		entry.Category = types.CategoryUnclassifiable
		entry.Confidence = 0.0
		entry.Reason = doc.Reason
		log.Printf("skipping %s: %s", doc.FileName, doc.Reason)
		return entry
	}

	result := p.classifier.Classify(ctx, doc.Text)
	doc.Category = result.Label
	entry.Category = result.Label
	entry.Confidence = result.Confidence
	entry.Fields = extractor.ExtractFields(result.Label, doc.Text)
	log.Printf("classified %s as %s (%.2f)", doc.FileName, result.Label, result.Confidence)
	return entry
}

func (p *Pipeline) persist(ctx context.Context, entries []ReportEntry) error {
	now := time.Now()
	for _, e := range entries {
		rec := catalog.Record{
			FileName:    e.FileName,
			Category:    e.Category,
			Confidence:  e.Confidence,
			Reason:      e.Reason,
			Fields:      e.Fields,
			ProcessedAt: now,
		}
		if err := p.catalog.Upsert(ctx, rec); err != nil {
			return fmt.Errorf("persist %s: %w", e.FileName, err)
		}
	}
	return nil
}

// WriteReport writes the report as indented JSON to path.
func WriteReport(report *Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
