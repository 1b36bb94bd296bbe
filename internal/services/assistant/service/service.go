// Package service implements the assistant command-processing service
package service

import (
	"time"

	"atelier/internal/core/noteintent"
	"atelier/internal/core/reldate"
	"atelier/internal/modkit/repokit"
	"atelier/internal/services/assistant/domain"
	"atelier/internal/services/assistant/repo"
)

// Config for the assistant service
type Config struct {
	// MaxBatchIDs caps an explicit id list; 0 means the default
	MaxBatchIDs int
}

// Service implements domain.ExtractorPort, domain.ResolverPort and domain.MutatorPort
type Service struct {
	tx      repokit.TxRunner
	binder  repokit.Binder[repo.Storage]
	extract *noteintent.Extractor
	cfg     Config

	// Clock is the wall-clock seam; tests pin it to a fixed day
	Clock func() time.Time
}

// New constructs the assistant service
func New(tx repokit.TxRunner, binder repokit.Binder[repo.Storage], ex *noteintent.Extractor, cfg Config) *Service {
	if cfg.MaxBatchIDs <= 0 {
		cfg.MaxBatchIDs = 500
	}
	return &Service{
		tx:      tx,
		binder:  binder,
		extract: ex,
		cfg:     cfg,
		Clock:   time.Now,
	}
}

// ExtractNote implements domain.ExtractorPort
func (s *Service) ExtractNote(text string) (domain.NoteIntent, bool) {
	in, ok := s.extract.Extract(text)
	if !ok {
		return domain.NoteIntent{}, false
	}
	return domain.NoteIntent{ProjectName: in.ProjectName, Note: in.Note}, true
}

// ResolveDate implements domain.ResolverPort
// a zero today falls back to the service clock
func (s *Service) ResolveDate(phrase string, today time.Time) (string, bool) {
	if today.IsZero() {
		today = s.Clock()
	}
	return reldate.Resolve(phrase, today)
}
