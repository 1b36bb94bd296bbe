// Package http provides http transport for the assistant
package http

import (
	stdhttp "net/http"
	"time"

	"atelier/internal/core/reldate"
	"atelier/internal/modkit/httpkit"
	"atelier/internal/services/assistant/domain"
	svc "atelier/internal/services/assistant/service"
)

// Register mounts assistant endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.NoteRequest](r, "/note", h.extractNote)
	httpkit.PostJSON[domain.DateRequest](r, "/date", h.resolveDate)
	httpkit.PostJSON[domain.BatchMutationInput](r, "/projects/batch", h.executeBatch)
	httpkit.PostJSON[domain.BatchMutationInput](r, "/projects/batch/preview", h.previewBatch)
}

type handlers struct{ svc *svc.Service }

func (h *handlers) extractNote(_ *stdhttp.Request, in domain.NoteRequest) (any, error) {
	intent, ok := h.svc.ExtractNote(in.Text)
	if !ok {
		// not a note command; an expected outcome, never a 4xx
		return domain.NoteResponse{Found: false}, nil
	}
	return domain.NoteResponse{Found: true, ProjectName: intent.ProjectName, Note: intent.Note}, nil
}

func (h *handlers) resolveDate(_ *stdhttp.Request, in domain.DateRequest) (any, error) {
	var today time.Time
	if in.Today != "" {
		// validated as isodate by the binder
		today, _ = time.ParseInLocation(reldate.ISODate, in.Today, time.Local)
	}
	date, ok := h.svc.ResolveDate(in.Phrase, today)
	if !ok {
		return domain.DateResponse{Found: false}, nil
	}
	return domain.DateResponse{Found: true, Date: date}, nil
}

func (h *handlers) executeBatch(r *stdhttp.Request, in domain.BatchMutationInput) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ExecuteBatch(r.Context(), owner, in)
}

func (h *handlers) previewBatch(r *stdhttp.Request, in domain.BatchMutationInput) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	n, err := h.svc.PreviewBatch(r.Context(), owner, in)
	if err != nil {
		return nil, err
	}
	return domain.PreviewResponse{Count: n}, nil
}
