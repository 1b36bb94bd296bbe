// Package repo provides the assistant repository implementation.
package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"atelier/internal/modkit/repokit"
	"atelier/internal/platform/store"
	"atelier/internal/services/assistant/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the assistant repository
// every method is scoped to a single owner; no call can reach another owner's rows
type Storage interface {
	CountProjects(ctx context.Context, ownerID string, scope domain.MutationScope) (int64, error)
	ListDeadlines(ctx context.Context, ownerID string, scope domain.MutationScope) ([]domain.DeadlineRow, error)
	UpdateManyProjects(ctx context.Context, ownerID string, scope domain.MutationScope, p domain.MutationPayload) (int64, error)
	UpdateProjectDeadline(ctx context.Context, ownerID, id string, deadline time.Time) error
	InsertConfirmation(ctx context.Context, ownerID, confirmationID string) error
}

// whereScope renders the scope as a WHERE clause body, owner first
func whereScope(sb *strings.Builder, arg func(any) string, ownerID string, scope domain.MutationScope) {
	sb.WriteString("WHERE owner_id = " + arg(ownerID) + "\n")

	if scope.Kind == domain.ScopeExplicitIDs {
		sb.WriteString("  AND id = ANY(" + arg(scope.IDs) + ")\n")
		return
	}

	f := scope.Filter
	if f.NoProgress {
		sb.WriteString("  AND progress IS NULL\n")
	} else {
		if f.MinProgress != nil {
			sb.WriteString("  AND progress >= " + arg(*f.MinProgress) + "\n")
		}
		if f.MaxProgress != nil {
			sb.WriteString("  AND progress <= " + arg(*f.MaxProgress) + "\n")
		}
	}
	if f.Status != "" {
		sb.WriteString("  AND status = " + arg(f.Status) + "\n")
	}
	if f.HasDeadline != nil {
		if *f.HasDeadline {
			sb.WriteString("  AND deadline IS NOT NULL\n")
		} else {
			sb.WriteString("  AND deadline IS NULL\n")
		}
	}
	if !f.DeadlineDate.IsZero() {
		// match the whole civil day
		sb.WriteString("  AND deadline >= " + arg(f.DeadlineDate) +
			" AND deadline < " + arg(f.DeadlineDate.AddDate(0, 0, 1)) + "\n")
	}
	if f.Collab != "" {
		sb.WriteString("  AND collab = " + arg(f.Collab) + "\n")
	}
	if f.Style != "" {
		sb.WriteString("  AND style = " + arg(f.Style) + "\n")
	}
	if f.Label != "" {
		sb.WriteString("  AND label = " + arg(f.Label) + "\n")
	}
	if f.LabelFinal != "" {
		sb.WriteString("  AND label_final = " + arg(f.LabelFinal) + "\n")
	}
}

// CountProjects implements Storage
func (s *pg) CountProjects(ctx context.Context, ownerID string, scope domain.MutationScope) (int64, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString("SELECT COUNT(*) FROM projects\n")
	whereScope(&sb, arg, ownerID, scope)

	return store.Scalar[int64](ctx, s.q, sb.String(), args...)
}

// ListDeadlines implements Storage; projection is {id, deadline} only
func (s *pg) ListDeadlines(ctx context.Context, ownerID string, scope domain.MutationScope) ([]domain.DeadlineRow, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString("SELECT id, deadline FROM projects\n")
	whereScope(&sb, arg, ownerID, scope)
	sb.WriteString("ORDER BY id")

	return store.Many(ctx, s.q, func(r store.Row) (domain.DeadlineRow, error) {
		var row domain.DeadlineRow
		err := r.Scan(&row.ID, &row.Deadline)
		return row, err
	}, sb.String(), args...)
}

// UpdateManyProjects implements Storage; returns rows affected
func (s *pg) UpdateManyProjects(
	ctx context.Context,
	ownerID string,
	scope domain.MutationScope,
	p domain.MutationPayload,
) (int64, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString("UPDATE projects SET updated_at = now()")
	if p.Progress != nil {
		sb.WriteString(", progress = " + arg(*p.Progress))
	}
	if p.Status != nil {
		sb.WriteString(", status = " + arg(*p.Status))
	}
	if p.SetDeadline {
		if p.Deadline == nil {
			sb.WriteString(", deadline = NULL")
		} else {
			sb.WriteString(", deadline = " + arg(*p.Deadline))
		}
	}
	if p.Collab != nil {
		sb.WriteString(", collab = " + arg(*p.Collab))
	}
	if p.Style != nil {
		sb.WriteString(", style = " + arg(*p.Style))
	}
	if p.Label != nil {
		sb.WriteString(", label = " + arg(*p.Label))
	}
	if p.LabelFinal != nil {
		sb.WriteString(", label_final = " + arg(*p.LabelFinal))
	}
	sb.WriteString("\n")
	whereScope(&sb, arg, ownerID, scope)

	tag, err := s.q.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// UpdateProjectDeadline implements Storage; single-row write for the shift pass
func (s *pg) UpdateProjectDeadline(ctx context.Context, ownerID, id string, deadline time.Time) error {
	_, err := s.q.Exec(ctx, `
		UPDATE projects
		SET deadline = $1, updated_at = now()
		WHERE owner_id = $2 AND id = $3
	`, deadline, ownerID, id)
	return err
}

// InsertConfirmation implements Storage
// a unique violation on confirmation_id is the caller's duplicate signal,
// so the raw error is returned unwrapped
func (s *pg) InsertConfirmation(ctx context.Context, ownerID, confirmationID string) error {
	return store.ExecOne(ctx, s.q, `
		INSERT INTO assistant_confirmations (confirmation_id, owner_id)
		VALUES ($1, $2)
	`, confirmationID, ownerID)
}
