package questionnaire

import (
	"sort"

	"github.com/coverdesk/claims-go/internal/domain/document"
)

type QuestionType string

const (
	TypeText        QuestionType = "text"
	TypeNumber      QuestionType = "number"
	TypeDate        QuestionType = "date"
	TypeBoolean     QuestionType = "boolean"
	TypeSelect      QuestionType = "select"
	TypeMultiSelect QuestionType = "multiselect"
	TypeFile        QuestionType = "file"
)

// QuestionResponse is one question of a section together with its
// server-confirmed answer state. Answered and the embedded Answer are
// authoritative; local drafts live outside this model.
type QuestionResponse struct {
	QuestionID string       `json:"questionId"`
	Text       string       `json:"questionText"`
	Type       QuestionType `json:"questionType"`
	Required   bool         `json:"required"`
	Answered   bool         `json:"answered"`
	Order      int          `json:"order"`
	Options    []string     `json:"options,omitempty"`
	Answer     *Answer      `json:"answer,omitempty"`
}

type Section struct {
	SectionID   string             `json:"sectionId"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Order       int                `json:"order"`
	IsComplete  bool               `json:"isComplete"`
	Questions   []QuestionResponse `json:"questions"`
}

// Questionnaire is the server-owned questionnaire for one claim. IsComplete
// and the counters are computed by the backend and never derived locally.
type Questionnaire struct {
	ID                string    `json:"id"`
	ClaimID           string    `json:"claimId"`
	Sections          []Section `json:"sections"`
	TotalQuestions    int       `json:"totalQuestions"`
	AnsweredQuestions int       `json:"answeredQuestions"`
	IsComplete        bool      `json:"isComplete"`
}

// Progress is the aggregate counter block returned alongside a section save.
type Progress struct {
	TotalQuestions    int  `json:"totalQuestions"`
	AnsweredQuestions int  `json:"answeredQuestions"`
	IsComplete        bool `json:"isComplete"`
}

// SaveResult is the unified save-response shape: a partial update carries the
// saved section plus progress; a full questionnaire response is the zero-delta
// special case and replaces everything.
type SaveResult struct {
	Section       *Section       `json:"section,omitempty"`
	Progress      *Progress      `json:"progress,omitempty"`
	Questionnaire *Questionnaire `json:"questionnaire,omitempty"`
}

// Draft is an in-progress answer the backend has not confirmed. Exactly one
// of Value and Files is meaningful: Files for file questions, Value otherwise.
type Draft struct {
	Value any
	Files []document.File
}

func (d Draft) IsEmpty() bool {
	if len(d.Files) > 0 {
		return false
	}
	switch v := d.Value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	}
	return false
}

// Normalize sorts sections and questions by their order field ascending.
// Ties keep the collection order the backend sent.
func (q *Questionnaire) Normalize() {
	sort.SliceStable(q.Sections, func(i, j int) bool {
		return q.Sections[i].Order < q.Sections[j].Order
	})
	for i := range q.Sections {
		qs := q.Sections[i].Questions
		sort.SliceStable(qs, func(a, b int) bool {
			return qs[a].Order < qs[b].Order
		})
	}
}

// Section returns the section with the given id.
func (q *Questionnaire) Section(sectionID string) *Section {
	for i := range q.Sections {
		if q.Sections[i].SectionID == sectionID {
			return &q.Sections[i]
		}
	}
	return nil
}

// Question returns the question with the given id, scanning all sections.
func (q *Questionnaire) Question(questionID string) *QuestionResponse {
	for i := range q.Sections {
		for j := range q.Sections[i].Questions {
			if q.Sections[i].Questions[j].QuestionID == questionID {
				return &q.Sections[i].Questions[j]
			}
		}
	}
	return nil
}

// TypeIndex builds the questionId -> question type lookup used on every save
// batch, so callers do not rescan sections per answer.
func (q *Questionnaire) TypeIndex() map[string]QuestionType {
	idx := make(map[string]QuestionType, q.TotalQuestions)
	for i := range q.Sections {
		for _, qr := range q.Sections[i].Questions {
			idx[qr.QuestionID] = qr.Type
		}
	}
	return idx
}

// MergeSave folds a save response into the questionnaire. Only state the
// server actually confirmed is touched.
func (q *Questionnaire) MergeSave(res *SaveResult) {
	if res == nil {
		return
	}
	if res.Questionnaire != nil {
		*q = *res.Questionnaire
		q.Normalize()
		return
	}
	if res.Section != nil {
		replaced := false
		for i := range q.Sections {
			if q.Sections[i].SectionID == res.Section.SectionID {
				q.Sections[i] = *res.Section
				replaced = true
				break
			}
		}
		if !replaced {
			q.Sections = append(q.Sections, *res.Section)
		}
		q.Normalize()
	}
	if res.Progress != nil {
		q.TotalQuestions = res.Progress.TotalQuestions
		q.AnsweredQuestions = res.Progress.AnsweredQuestions
		q.IsComplete = res.Progress.IsComplete
	}
}
