package service

import (
	"time"

	perr "atelier/internal/platform/errors"
	"atelier/internal/services/assistant/domain"

	"atelier/internal/core/reldate"
)

// resolveScope turns request scope fields into a MutationScope.
// An explicit id list always wins: when present, every filter field is
// ignored even if set. An empty scope is rejected before any storage access
func resolveScope(in domain.BatchMutationInput) (domain.MutationScope, error) {
	if len(in.ProjectIDs) > 0 {
		return domain.MutationScope{Kind: domain.ScopeExplicitIDs, IDs: in.ProjectIDs}, nil
	}

	f := domain.ProjectFilter{
		Status:      in.Status,
		HasDeadline: in.HasDeadline,
		NoProgress:  in.NoProgress,
		Collab:      in.Collab,
		Style:       in.Style,
		Label:       in.Label,
		LabelFinal:  in.LabelFinal,
	}

	// noProgress is exclusive with the numeric bounds: progress must be null,
	// so min/max cannot apply
	if !in.NoProgress {
		f.MinProgress = in.MinProgress
		f.MaxProgress = in.MaxProgress
	}

	if in.DeadlineDate != "" {
		d, err := time.ParseInLocation(reldate.ISODate, in.DeadlineDate, time.Local)
		if err != nil {
			return domain.MutationScope{}, perr.WithField(
				perr.Validationf("date invalide: %q", in.DeadlineDate), "deadlineDate")
		}
		f.DeadlineDate = d
	}

	if f.IsZero() {
		return domain.MutationScope{}, perr.Validationf(
			"aucun projet ciblé: fournissez projectIds ou au moins un filtre")
	}
	return domain.MutationScope{Kind: domain.ScopeFilter, Filter: f}, nil
}
