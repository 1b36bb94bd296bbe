package domain

// NoteRequest is the extract-note request body
type NoteRequest struct {
	Text string `json:"text" validate:"required,min=2"`
}

// NoteResponse reports the extraction outcome
// Found false is a normal answer for text that is not a note command
type NoteResponse struct {
	Found       bool   `json:"found"`
	ProjectName string `json:"projectName,omitempty"`
	Note        string `json:"note,omitempty"`
}

// DateRequest is the resolve-date request body
// Today optionally pins the reference day, mostly for clients replaying history
type DateRequest struct {
	Phrase string `json:"phrase" validate:"required"`
	Today  string `json:"today,omitempty" validate:"omitempty,isodate"`
}

// DateResponse reports the resolution outcome
type DateResponse struct {
	Found bool   `json:"found"`
	Date  string `json:"date,omitempty"`
}

// PreviewResponse reports how many records a scope would touch
type PreviewResponse struct {
	Count int64 `json:"count"`
}
