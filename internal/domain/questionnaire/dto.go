package questionnaire

// AnswerSubmission is one entry of the answer batch sent to the save
// endpoints. Value is a scalar, or a document identifier for file questions.
type AnswerSubmission struct {
	QuestionID string `json:"questionId"`
	Value      any    `json:"value"`
}

// DraftInput is one draft entry sent by the frontend stepper.
type DraftInput struct {
	QuestionID string `json:"questionId" binding:"required"`
	Value      any    `json:"value"`
}

type SaveDraftInput struct {
	Answers []DraftInput `json:"answers" binding:"required"`
}

// QuestionView is what the stepper renders for one question: the confirmed
// state plus the display value after draft/server precedence is applied.
type QuestionView struct {
	QuestionID   string       `json:"questionId"`
	Text         string       `json:"questionText"`
	Type         QuestionType `json:"questionType"`
	Required     bool         `json:"required"`
	Answered     bool         `json:"answered"`
	Options      []string     `json:"options,omitempty"`
	DisplayValue any          `json:"displayValue,omitempty"`
	PendingFiles []string     `json:"pendingFiles,omitempty"`
}

type SectionView struct {
	SectionID   string         `json:"sectionId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	IsComplete  bool           `json:"isComplete"`
	Current     bool           `json:"current"`
	Questions   []QuestionView `json:"questions"`
}

type View struct {
	ClaimID           string        `json:"claimId"`
	CurrentIndex      int           `json:"currentIndex"`
	ReadyForReview    bool          `json:"readyForReview"`
	TotalQuestions    int           `json:"totalQuestions"`
	AnsweredQuestions int           `json:"answeredQuestions"`
	IsComplete        bool          `json:"isComplete"`
	Sections          []SectionView `json:"sections"`
}
