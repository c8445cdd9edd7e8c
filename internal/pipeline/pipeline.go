package pipeline

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/ppiankov/identigen/internal/classify"
	"github.com/ppiankov/identigen/internal/extract"
	"github.com/ppiankov/identigen/internal/model"
	"github.com/ppiankov/identigen/internal/qr"
	"github.com/ppiankov/identigen/internal/util"
	"github.com/rs/zerolog"
)

const robotsTTL = time.Hour

// Pipeline orchestrates a single generate run
type Pipeline struct {
	config    *model.Config
	fetcher   *Fetcher
	robots    *util.RobotsChecker // nil unless respect_robots is On
	extractor *extract.IdentityExtractor
	renderer  *Renderer
	qr        *qr.Renderer
	logger    zerolog.Logger
	now       func() time.Time
}

// Option customizes a Pipeline
type Option func(*Pipeline)

// WithClock overrides the clock used for output timestamps
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// WithRand overrides the random source used for substituted digits
func WithRand(rng *rand.Rand) Option {
	return func(p *Pipeline) {
		p.extractor = extract.NewIdentityExtractor(rng)
	}
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, logger zerolog.Logger, opts ...Option) (*Pipeline, error) {
	fetcher, err := NewFetcher(cfg.HTTP)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		config:    cfg,
		fetcher:   fetcher,
		extractor: extract.NewIdentityExtractor(nil),
		renderer:  NewRenderer(),
		qr:        qr.NewRenderer(cfg.QR.Enabled()),
		logger:    logger,
		now:       time.Now,
	}
	if cfg.HTTP.RobotsEnabled() {
		p.robots = util.NewRobotsChecker(fetcher.Client(), robotsTTL)
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Result describes what a run produced
type Result struct {
	URL      string
	Record   *model.CategorizedRecord
	TextPath string
	QRPath   string // empty when QR rendering is disabled
}

// Run fetches one profile and writes it out. Any failure aborts the run
// without leaving output files behind.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	// 1. Build URL
	target, err := BuildURL(p.config.HTTP.BaseURL, p.config.Advanced)
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}

	userAgent := PickUserAgent()

	// 2. Robots gate
	if p.robots != nil {
		if err := p.robots.Check(ctx, target, userAgent); err != nil {
			return nil, err
		}
		p.logger.Debug().Str("url", target).Msg("robots.txt allows fetch")
	}

	// 3. Fetch HTML
	p.logger.Info().Str("url", target).Msg("fetching profile")
	fetched, err := p.fetcher.FetchAs(ctx, target, userAgent)
	if err != nil {
		return nil, err
	}
	p.logger.Debug().
		Int("status", fetched.StatusCode).
		Int("bytes", len(fetched.HTML)).
		Str("content_type", fetched.ContentType).
		Msg("fetched profile")

	// 4. Extract and classify
	record, err := p.ParseHTML(fetched.HTML)
	if err != nil {
		return nil, err
	}

	// 5. Write outputs
	ts := p.now()
	dir := p.config.Output.Dir
	text := FormatText(record)

	textPath, err := p.renderer.WriteText(text, dir, ts)
	if err != nil {
		return nil, fmt.Errorf("write record: %w", err)
	}
	p.logger.Info().Str("path", textPath).Msg("identity information saved")

	qrPath, err := p.qr.Render(text, dir, ts)
	if err != nil {
		if rmErr := os.Remove(textPath); rmErr != nil {
			p.logger.Warn().Err(rmErr).Str("path", textPath).Msg("failed to remove record after qr error")
		}
		return nil, fmt.Errorf("render qr: %w", err)
	}
	if qrPath != "" {
		p.logger.Info().Str("path", qrPath).Msg("qr code saved")
	} else {
		p.logger.Info().Msg("qr code generation is disabled")
	}

	return &Result{
		URL:      fetched.FinalURL,
		Record:   record,
		TextPath: textPath,
		QRPath:   qrPath,
	}, nil
}

// ParseHTML extracts and classifies a profile page without any I/O
func (p *Pipeline) ParseHTML(htmlContent string) (*model.CategorizedRecord, error) {
	record, err := p.extractor.Extract(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	categorized := classify.Categorize(record)
	p.logger.Debug().
		Int("fields", len(record.Fields)).
		Int("kept", categorized.Len()).
		Msg("classified fields")

	return categorized, nil
}

// RenderSummary prints the record table to out
func (p *Pipeline) RenderSummary(out io.Writer, rec *model.CategorizedRecord) {
	p.renderer.RenderSummary(out, rec)
}
