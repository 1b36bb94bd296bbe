package service

import (
	"time"

	"atelier/internal/core/reldate"
	perr "atelier/internal/platform/errors"
	"atelier/internal/services/assistant/domain"
)

// buildPayload turns mutation fields into a flat payload plus an optional
// per-record deadline shift. Validation failures here never touch storage
func buildPayload(in domain.BatchMutationInput, today time.Time) (domain.MutationPayload, *domain.DeadlineShift, error) {
	var p domain.MutationPayload

	shift := in.PushDeadlineBy
	if shift != nil && shift.IsZero() {
		return p, nil, perr.WithField(
			perr.Validationf("pushDeadlineBy: au moins un composant non nul requis"), "pushDeadlineBy")
	}

	if in.NewProgress != nil {
		v := *in.NewProgress
		p.Progress = &v
	}
	if in.NewStatus != "" {
		st := in.NewStatus
		p.Status = &st
		if st == domain.StatusDone {
			// a finished project is complete by definition; this always wins
			// over any newProgress supplied alongside
			done := 100
			p.Progress = &done
		}
	}

	if in.NewDeadline.Set {
		if in.NewDeadline.Value == nil {
			if shift != nil {
				return p, nil, perr.WithField(
					perr.Validationf("newDeadline: null est incompatible avec pushDeadlineBy"), "newDeadline")
			}
			// explicit null clears the deadline
			p.SetDeadline = true
			p.Deadline = nil
		} else {
			d, err := parseDeadline(*in.NewDeadline.Value, today)
			if err != nil {
				return p, nil, err
			}
			p.SetDeadline = true
			p.Deadline = &d
		}
	}

	p.Collab = in.NewCollab
	p.Style = in.NewStyle
	p.Label = in.NewLabel
	p.LabelFinal = in.NewLabelFinal

	if p.IsZero() && shift == nil {
		return p, nil, perr.Validationf("aucune modification fournie")
	}
	return p, shift, nil
}

// parseDeadline resolves relative vocabulary first, then falls back to
// generic date formats. The returned time is local midnight of the target day
func parseDeadline(s string, today time.Time) (time.Time, error) {
	if iso, ok := reldate.Resolve(s, today); ok {
		d, err := time.ParseInLocation(reldate.ISODate, iso, time.Local)
		if err == nil {
			return d, nil
		}
	}
	if d, err := time.ParseInLocation(reldate.ISODate, s, time.Local); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return reldate.Midnight(d.Local()), nil
	}
	return time.Time{}, perr.WithField(perr.Validationf("date invalide: %q", s), "newDeadline")
}
