// Package domain defines the types and interfaces for the assistant service
package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// NoteIntent is a recognized "note update" command
// both fields are trimmed and keep the casing the user typed
type NoteIntent struct {
	ProjectName string `json:"projectName"`
	Note        string `json:"note"`
}

// NullableString distinguishes "field absent" from "field set to null"
// Set is false when the key was missing from the JSON document entirely
type NullableString struct {
	Value *string
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler; called only when the key is present
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// MarshalJSON implements json.Marshaler
func (n NullableString) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// DeadlineShift moves existing deadlines by a relative amount
// negative components move deadlines earlier
type DeadlineShift struct {
	Days   int `json:"days,omitempty"`
	Weeks  int `json:"weeks,omitempty"`
	Months int `json:"months,omitempty"`
}

// IsZero reports whether every component is zero
func (d DeadlineShift) IsZero() bool { return d.Days == 0 && d.Weeks == 0 && d.Months == 0 }

// Apply shifts t by the delta
func (d DeadlineShift) Apply(t time.Time) time.Time {
	return t.AddDate(0, d.Months, d.Days+7*d.Weeks)
}

// BatchMutationInput is the structured batch-mutation request
// scope fields select records, new-value fields describe the mutation
type BatchMutationInput struct {
	// scope
	ProjectIDs   []string `json:"projectIds,omitempty" validate:"omitempty,max=500,dive,min=1"`
	MinProgress  *int     `json:"minProgress,omitempty" validate:"omitempty,min=0,max=100"`
	MaxProgress  *int     `json:"maxProgress,omitempty" validate:"omitempty,min=0,max=100"`
	Status       string   `json:"status,omitempty"`
	HasDeadline  *bool    `json:"hasDeadline,omitempty"`
	DeadlineDate string   `json:"deadlineDate,omitempty" validate:"omitempty,isodate"`
	NoProgress   bool     `json:"noProgress,omitempty"`
	Collab       string   `json:"collab,omitempty"`
	Style        string   `json:"style,omitempty"`
	Label        string   `json:"label,omitempty"`
	LabelFinal   string   `json:"labelFinal,omitempty"`

	// mutation
	NewProgress    *int           `json:"newProgress,omitempty" validate:"omitempty,min=0,max=100"`
	NewStatus      string         `json:"newStatus,omitempty"`
	NewDeadline    NullableString `json:"newDeadline,omitzero"`
	PushDeadlineBy *DeadlineShift `json:"pushDeadlineBy,omitempty"`
	NewCollab      *string        `json:"newCollab,omitempty"`
	NewStyle       *string        `json:"newStyle,omitempty"`
	NewLabel       *string        `json:"newLabel,omitempty"`
	NewLabelFinal  *string        `json:"newLabelFinal,omitempty"`

	// idempotency
	ConfirmationID string `json:"confirmationId,omitempty"`
}

// ScopeKind tags the two scope shapes
type ScopeKind int

const (
	// ScopeExplicitIDs targets an explicit id list
	ScopeExplicitIDs ScopeKind = iota
	// ScopeFilter targets records matching a predicate
	ScopeFilter
)

// ProjectFilter is the predicate form of a scope
// zero values mean "not filtered on"
type ProjectFilter struct {
	MinProgress  *int
	MaxProgress  *int
	Status       string
	HasDeadline  *bool
	DeadlineDate time.Time // zero means unset; matches the whole civil day
	NoProgress   bool
	Collab       string
	Style        string
	Label        string
	LabelFinal   string
}

// IsZero reports whether no filter field is set
func (f ProjectFilter) IsZero() bool {
	return f.MinProgress == nil && f.MaxProgress == nil && f.Status == "" &&
		f.HasDeadline == nil && f.DeadlineDate.IsZero() && !f.NoProgress &&
		f.Collab == "" && f.Style == "" && f.Label == "" && f.LabelFinal == ""
}

// MutationScope is the resolved target of a batch mutation
// invariant: IDs non-empty iff Kind == ScopeExplicitIDs
type MutationScope struct {
	Kind   ScopeKind
	IDs    []string
	Filter ProjectFilter
}

// MutationPayload is the flat part of a planned mutation
// nil pointers mean "leave unchanged"; SetDeadline with a nil Deadline clears it
type MutationPayload struct {
	Progress    *int
	Status      *string
	SetDeadline bool
	Deadline    *time.Time
	Collab      *string
	Style       *string
	Label       *string
	LabelFinal  *string
}

// IsZero reports whether the payload carries no change
func (p MutationPayload) IsZero() bool {
	return p.Progress == nil && p.Status == nil && !p.SetDeadline &&
		p.Collab == nil && p.Style == nil && p.Label == nil && p.LabelFinal == nil
}

// DeadlineRow is the projection used by the per-record shift pass
type DeadlineRow struct {
	ID       string
	Deadline *time.Time
}

// BatchMutationResult reports what a batch mutation did
type BatchMutationResult struct {
	Count      int64  `json:"count"`
	Duplicated bool   `json:"duplicated,omitempty"`
	Message    string `json:"message"`
}

// StatusDone is the status value that forces progress to 100
const StatusDone = "TERMINE"
