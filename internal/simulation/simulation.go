// Package simulation drives a catalog with randomly chosen add, remove and
// search events and narrates every step through a structured logger. A run is
// fully determined by its seed and fixtures.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"

	"booklibrary/internal/book"
	"booklibrary/internal/library"

	"github.com/google/uuid"
)

const (
	minYear = 1600
	maxYear = 2025

	minISBN = 1_000_000_000
	maxISBN = 9_999_999_999
)

// Config controls a single run.
type Config struct {
	Steps          int
	Seed           int64
	StepsPerSecond float64
	Fixtures       Fixtures
}

// Report summarises a finished run. Books is the catalog size tracked from
// the adds and removes that succeeded.
type Report struct {
	RunID   string
	Seed    int64
	Results []StepResult
	Events  map[string]int
	Books   int
	Stats   library.Stats
}

// Simulator runs random events against a catalog.
type Simulator struct {
	catalog  library.Catalog
	cfg      Config
	rng      *rand.Rand
	logger   *slog.Logger
	metrics  *Metrics
	pacer    *pacer
	runID    string
	fixtures Fixtures
}

// New creates a simulator. A nil logger discards output.
func New(catalog library.Catalog, cfg Config, logger *slog.Logger) (*Simulator, error) {
	if cfg.Steps < 0 {
		return nil, fmt.Errorf("steps must not be negative, got %d", cfg.Steps)
	}
	if err := cfg.Fixtures.Validate(); err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	runID := uuid.NewString()
	seed := uint64(cfg.Seed)

	return &Simulator{
		catalog:  catalog,
		cfg:      cfg,
		rng:      rand.New(rand.NewPCG(seed, seed)), //nolint:gosec // Weak random OK for simulation
		logger:   logger.With("run_id", runID),
		metrics:  NewMetrics(),
		pacer:    newPacer(cfg.StepsPerSecond),
		runID:    runID,
		fixtures: cfg.Fixtures,
	}, nil
}

// Run seeds the catalog with the starting books and then executes the
// configured number of steps. It stops early if ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) (Report, error) {
	s.logger.Info("simulation started", "steps", s.cfg.Steps, "seed", s.cfg.Seed)

	for _, b := range s.fixtures.StartingBooks {
		err := s.catalog.AddBook(b)
		switch {
		case errors.Is(err, book.ErrDuplicate):
			s.logger.Warn("starting book skipped, duplicate isbn", "step", 0, "book", b.String())
			continue
		case err != nil:
			return Report{}, fmt.Errorf("add starting book %s: %w", b.ISBN, err)
		}
		s.metrics.bookAdded()
		s.logger.Info("starting book added", "step", 0, "book", b.String())
	}

	report := Report{
		RunID:   s.runID,
		Seed:    s.cfg.Seed,
		Results: make([]StepResult, 0, s.cfg.Steps),
	}

	for step := 1; step <= s.cfg.Steps; step++ {
		if err := s.pacer.wait(ctx); err != nil {
			return report, fmt.Errorf("step %d: %w", step, err)
		}

		event := Events[s.rng.IntN(len(Events))]
		s.logger.Info("step", "step", step, "event", event.String())

		result := s.runEvent(step, event)
		s.metrics.observe(result.Event, result.Outcome)
		report.Results = append(report.Results, result)
	}

	counts, err := s.metrics.EventCounts()
	if err != nil {
		return report, err
	}
	report.Events = counts
	if report.Books, err = s.metrics.BookCount(); err != nil {
		return report, err
	}
	report.Stats = s.catalog.Statistics()

	s.logger.Info("simulation finished",
		"steps", len(report.Results),
		"total_books", report.Stats.TotalBooks,
		"books_tracked", report.Books,
		"unique_authors", report.Stats.UniqueAuthors,
	)
	return report, nil
}

func (s *Simulator) runEvent(step int, event Event) StepResult {
	r := StepResult{Step: step, Event: event}
	log := s.logger.With("step", step, "event", event.String())

	switch event {
	case EventAddBook:
		b := s.randomBook()
		r.Detail = b.String()
		if err := s.catalog.AddBook(b); err != nil {
			r.Outcome = OutcomeDuplicate
			log.Warn("book not added", "book", r.Detail, "error", err)
			break
		}
		r.Outcome = OutcomeOK
		s.metrics.bookAdded()
		log.Info("book added", "book", r.Detail)

	case EventRemoveBook:
		books := s.catalog.AllBooks()
		if books.Len() == 0 {
			r.Outcome = OutcomeSkipped
			log.Info("no books to remove")
			break
		}
		b := s.pick(books)
		r.Detail = b.String()
		if s.catalog.RemoveBook(b) {
			r.Outcome = OutcomeOK
			s.metrics.bookRemoved()
			log.Info("book removed", "book", r.Detail)
		} else {
			r.Outcome = OutcomeNotFound
			log.Warn("book could not be removed", "book", r.Detail)
		}

	case EventSearchByAuthor:
		authors := s.catalog.Authors()
		if len(authors) == 0 {
			r.Outcome = OutcomeSkipped
			log.Info("no authors to search")
			break
		}
		author := authors[s.rng.IntN(len(authors))]
		r.Detail = author
		s.logFound(log, &r, "author", author, s.catalog.SearchByAuthor(author))

	case EventSearchByGenre:
		genre := s.fixtures.Genres[s.rng.IntN(len(s.fixtures.Genres))]
		r.Detail = genre
		s.logFound(log, &r, "genre", genre, s.catalog.SearchByGenre(genre))

	case EventSearchByYear:
		years := s.catalog.Statistics().YearsRange
		if len(years) == 0 {
			r.Outcome = OutcomeSkipped
			log.Info("no years to search")
			break
		}
		year := years[s.rng.IntN(len(years))]
		r.Detail = strconv.Itoa(year)
		s.logFound(log, &r, "year", year, s.catalog.SearchByYear(year))

	case EventSearchByISBN:
		books := s.catalog.AllBooks()
		if books.Len() == 0 {
			r.Outcome = OutcomeSkipped
			log.Info("no books to search by isbn")
			break
		}
		isbn := s.pick(books).ISBN
		r.Detail = isbn
		s.logFound(log, &r, "isbn", isbn, s.catalog.SearchByISBN(isbn))

	case EventSearchMissing:
		isbn := s.fixtures.MissingISBN
		r.Detail = isbn
		s.logFound(log, &r, "isbn", isbn, s.catalog.SearchByISBN(isbn))
	}

	return r
}

func (s *Simulator) logFound(log *slog.Logger, r *StepResult, key string, value any, found *book.Collection) {
	r.Found = found.Len()
	if r.Found == 0 {
		r.Outcome = OutcomeEmpty
	} else {
		r.Outcome = OutcomeOK
	}

	log.Info("search finished", key, value, "found", r.Found)
	i := 1
	for b := range found.All() {
		log.Info("found", "n", i, "book", b.String())
		i++
	}
}

func (s *Simulator) pick(c *book.Collection) book.Book {
	b, err := c.At(s.rng.IntN(c.Len()))
	if err != nil {
		panic(err)
	}
	return b
}

func (s *Simulator) randomBook() book.Book {
	f := s.fixtures
	title := f.Titles[s.rng.IntN(len(f.Titles))]
	author := f.Authors[s.rng.IntN(len(f.Authors))]
	year := minYear + s.rng.IntN(maxYear-minYear+1)
	genre := f.Genres[s.rng.IntN(len(f.Genres))]
	isbn := strconv.FormatInt(minISBN+s.rng.Int64N(maxISBN-minISBN+1), 10)

	return book.New(title, author, year, genre, isbn)
}
