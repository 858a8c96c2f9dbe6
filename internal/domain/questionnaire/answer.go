package questionnaire

import (
	"encoding/json"
	"time"
)

type AnswerKind string

const (
	KindText        AnswerKind = "text"
	KindNumber      AnswerKind = "number"
	KindDate        AnswerKind = "date"
	KindBoolean     AnswerKind = "boolean"
	KindSelect      AnswerKind = "select"
	KindMultiSelect AnswerKind = "multiselect"
	KindFile        AnswerKind = "file"
)

// Answer is a server-confirmed answer as a tagged union. The backend's wire
// shape populates exactly one of textValue/numberValue/dateValue/booleanValue/
// selectValue/multiselectValue/fileValue; it is decoded once here so no other
// package has to inspect the variants.
type Answer struct {
	Kind        AnswerKind
	Text        string
	Number      float64
	Date        time.Time
	Bool        bool
	Select      string
	MultiSelect []string
	FileID      string
}

type wireAnswer struct {
	TextValue        *string  `json:"textValue,omitempty"`
	NumberValue      *float64 `json:"numberValue,omitempty"`
	DateValue        *string  `json:"dateValue,omitempty"`
	BooleanValue     *bool    `json:"booleanValue,omitempty"`
	SelectValue      *string  `json:"selectValue,omitempty"`
	MultiselectValue []string `json:"multiselectValue,omitempty"`
	FileValue        *string  `json:"fileValue,omitempty"`
}

const dateOnly = "2006-01-02"

func (a *Answer) UnmarshalJSON(data []byte) error {
	var w wireAnswer
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.TextValue != nil:
		a.Kind, a.Text = KindText, *w.TextValue
	case w.NumberValue != nil:
		a.Kind, a.Number = KindNumber, *w.NumberValue
	case w.DateValue != nil:
		a.Kind = KindDate
		t, err := time.Parse(time.RFC3339, *w.DateValue)
		if err != nil {
			if t, err = time.Parse(dateOnly, *w.DateValue); err != nil {
				return err
			}
		}
		a.Date = t
	case w.BooleanValue != nil:
		a.Kind, a.Bool = KindBoolean, *w.BooleanValue
	case w.SelectValue != nil:
		a.Kind, a.Select = KindSelect, *w.SelectValue
	case w.MultiselectValue != nil:
		a.Kind, a.MultiSelect = KindMultiSelect, w.MultiselectValue
	case w.FileValue != nil:
		a.Kind, a.FileID = KindFile, *w.FileValue
	}
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	var w wireAnswer
	switch a.Kind {
	case KindText:
		w.TextValue = &a.Text
	case KindNumber:
		w.NumberValue = &a.Number
	case KindDate:
		s := a.Date.Format(time.RFC3339)
		w.DateValue = &s
	case KindBoolean:
		w.BooleanValue = &a.Bool
	case KindSelect:
		w.SelectValue = &a.Select
	case KindMultiSelect:
		w.MultiselectValue = a.MultiSelect
	case KindFile:
		w.FileValue = &a.FileID
	}
	return json.Marshal(w)
}

// Value returns the answer as the scalar sent back to the frontend.
func (a Answer) Value() any {
	switch a.Kind {
	case KindText:
		return a.Text
	case KindNumber:
		return a.Number
	case KindDate:
		return a.Date.Format(time.RFC3339)
	case KindBoolean:
		return a.Bool
	case KindSelect:
		return a.Select
	case KindMultiSelect:
		return a.MultiSelect
	case KindFile:
		return a.FileID
	}
	return nil
}

func (a Answer) IsEmpty() bool {
	switch a.Kind {
	case "":
		return true
	case KindText:
		return a.Text == ""
	case KindDate:
		return a.Date.IsZero()
	case KindSelect:
		return a.Select == ""
	case KindMultiSelect:
		return len(a.MultiSelect) == 0
	case KindFile:
		return a.FileID == ""
	}
	return false
}
