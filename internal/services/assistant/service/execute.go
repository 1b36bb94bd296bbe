package service

import (
	"context"
	"errors"
	"fmt"

	"atelier/internal/core/reldate"
	"atelier/internal/modkit/repokit"
	perr "atelier/internal/platform/errors"
	"atelier/internal/platform/logger"
	"atelier/internal/services/assistant/domain"
	"atelier/internal/services/assistant/repo"
)

// errDuplicateConfirmation aborts the transaction before any project row is
// touched; the caller maps it to a safe no-op success
var errDuplicateConfirmation = errors.New("confirmation already recorded")

// ExecuteBatch implements domain.MutatorPort.
//
// With a confirmationId the whole mutation runs in one transaction whose first
// statement inserts the confirmation marker; a unique violation there means a
// retry of an already-applied action and yields {count: 0, duplicated: true}.
// Without a confirmationId the caller accepts at-least-once semantics and no
// transaction is opened
func (s *Service) ExecuteBatch(
	ctx context.Context,
	ownerID string,
	in domain.BatchMutationInput,
) (domain.BatchMutationResult, error) {
	if ownerID == "" {
		return domain.BatchMutationResult{}, perr.Unauthorizedf("missing owner scope")
	}
	if len(in.ProjectIDs) > s.cfg.MaxBatchIDs {
		return domain.BatchMutationResult{}, perr.WithField(
			perr.Validationf("projectIds: au plus %d identifiants", s.cfg.MaxBatchIDs), "projectIds")
	}

	scope, err := resolveScope(in)
	if err != nil {
		return domain.BatchMutationResult{}, err
	}
	payload, shift, err := buildPayload(in, reldate.Midnight(s.Clock()))
	if err != nil {
		return domain.BatchMutationResult{}, err
	}

	var count int64
	if in.ConfirmationID != "" {
		count, err = s.executeConfirmed(ctx, ownerID, in.ConfirmationID, scope, payload, shift)
		if errors.Is(err, errDuplicateConfirmation) {
			logger.C(ctx).Info().Str("confirmation_id", in.ConfirmationID).Msg("duplicate confirmation, no-op")
			return domain.BatchMutationResult{Count: 0, Duplicated: true, Message: "Déjà appliqué"}, nil
		}
	} else {
		count, err = s.apply(ctx, s.binder.Bind(s.tx), ownerID, scope, payload, shift)
	}
	if err != nil {
		return domain.BatchMutationResult{}, perr.FromPostgres(err, "échec de la mise à jour groupée")
	}

	logger.C(ctx).Debug().
		Int("scope_kind", int(scope.Kind)).
		Bool("per_record", shift != nil).
		Int64("count", count).
		Msg("batch mutation applied")

	return domain.BatchMutationResult{
		Count:   count,
		Message: fmt.Sprintf("%d projet(s) mis à jour", count),
	}, nil
}

// executeConfirmed runs the marker insert plus the mutation in one transaction
func (s *Service) executeConfirmed(
	ctx context.Context,
	ownerID, confirmationID string,
	scope domain.MutationScope,
	payload domain.MutationPayload,
	shift *domain.DeadlineShift,
) (int64, error) {
	var count int64
	err := s.tx.Tx(ctx, func(q repokit.Queryer) error {
		st := s.binder.Bind(q)

		// marker first: losing the uniqueness race aborts before any project row
		if err := st.InsertConfirmation(ctx, ownerID, confirmationID); err != nil {
			if perr.IsDuplicateKey(err) {
				return errDuplicateConfirmation
			}
			return err
		}

		n, err := s.apply(ctx, st, ownerID, scope, payload, shift)
		if err != nil {
			// roll back everything, marker included, so the same token can retry
			return err
		}
		count = n
		return nil
	})
	return count, err
}

// apply runs the bulk pass and/or the per-record shift pass against st.
// When both run, the bulk count is reported; a shift-only request reports the
// number of rewritten rows (null deadlines are skipped and not counted)
func (s *Service) apply(
	ctx context.Context,
	st repo.Storage,
	ownerID string,
	scope domain.MutationScope,
	payload domain.MutationPayload,
	shift *domain.DeadlineShift,
) (int64, error) {
	var count int64

	if !payload.IsZero() {
		n, err := st.UpdateManyProjects(ctx, ownerID, scope, payload)
		if err != nil {
			return 0, err
		}
		count = n
	}

	if shift != nil {
		rows, err := st.ListDeadlines(ctx, ownerID, scope)
		if err != nil {
			return 0, err
		}
		var shifted int64
		for _, r := range rows {
			if r.Deadline == nil {
				continue
			}
			if err := st.UpdateProjectDeadline(ctx, ownerID, r.ID, shift.Apply(*r.Deadline)); err != nil {
				return 0, err
			}
			shifted++
		}
		if payload.IsZero() {
			count = shifted
		}
	}

	return count, nil
}

// PreviewBatch implements domain.MutatorPort; counts the records a scope would
// touch without mutating anything
func (s *Service) PreviewBatch(ctx context.Context, ownerID string, in domain.BatchMutationInput) (int64, error) {
	if ownerID == "" {
		return 0, perr.Unauthorizedf("missing owner scope")
	}
	scope, err := resolveScope(in)
	if err != nil {
		return 0, err
	}
	n, err := s.binder.Bind(s.tx).CountProjects(ctx, ownerID, scope)
	if err != nil {
		return 0, perr.FromPostgres(err, "échec du comptage")
	}
	return n, nil
}
