package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNullableStringAbsentNullValue(t *testing.T) {
	type doc struct {
		NewDeadline NullableString `json:"newDeadline,omitzero"`
	}

	var absent doc
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatal(err)
	}
	if absent.NewDeadline.Set {
		t.Fatalf("absent key must not mark Set")
	}

	var null doc
	if err := json.Unmarshal([]byte(`{"newDeadline":null}`), &null); err != nil {
		t.Fatal(err)
	}
	if !null.NewDeadline.Set || null.NewDeadline.Value != nil {
		t.Fatalf("explicit null must be Set with nil value: %+v", null.NewDeadline)
	}

	var val doc
	if err := json.Unmarshal([]byte(`{"newDeadline":"demain"}`), &val); err != nil {
		t.Fatal(err)
	}
	if !val.NewDeadline.Set || val.NewDeadline.Value == nil || *val.NewDeadline.Value != "demain" {
		t.Fatalf("string value lost: %+v", val.NewDeadline)
	}
}

func TestDeadlineShiftApply(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	got := DeadlineShift{Days: 1, Weeks: 1, Months: 1}.Apply(base)
	want := time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Apply = %v, want %v", got, want)
	}

	back := DeadlineShift{Days: -8, Months: -1}.Apply(got)
	if !back.Equal(base) {
		t.Fatalf("negative shift must reverse: %v", back)
	}

	if !(DeadlineShift{}).IsZero() || (DeadlineShift{Weeks: -1}).IsZero() {
		t.Fatalf("IsZero wrong")
	}
}

func TestMutationPayloadIsZero(t *testing.T) {
	if !(MutationPayload{}).IsZero() {
		t.Fatalf("empty payload must be zero")
	}
	if (MutationPayload{SetDeadline: true}).IsZero() {
		t.Fatalf("clearing the deadline is a change")
	}
}
