package models

// Direction controls which side of a vocabulary pair is prompted and which
// is expected as the answer.
type Direction int

const (
	// Forward shows the Polish term and expects the English translation.
	Forward Direction = iota
	// Reverse shows the English translation and expects the Polish term.
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// SessionState is the explicit state of a quiz session. A user with no
// stored session is idle.
type SessionState int

const (
	StateAwaitingAnswer SessionState = iota
	StateFinished
	StateAborted
)

// QuizSession is one bounded run of questions for a single user. The word
// list is fixed at creation and never reshuffled.
type QuizSession struct {
	UserID    int64
	Words     []VocabPair
	Index     int
	Score     int
	Direction Direction
	Accepted  []string
	State     SessionState
}

// Question is what the presentation layer renders for the current index.
type Question struct {
	Prompt    string
	Number    int // 1-based, for "Question N/Total"
	Total     int
	Direction Direction
}

// GradeResult reports the outcome of one submitted or skipped answer.
// Summary is non-nil only when the session just finished.
type GradeResult struct {
	Correct  bool
	Skipped  bool
	Expected string
	Accepted []string
	Finished bool
	Summary  *QuizSummary
	Next     *Question
}

type QuizSummary struct {
	Score      int
	Length     int
	Percentage float64
}

// UserStats accumulates across quizzes for the process lifetime. Counters
// only ever grow.
type UserStats struct {
	TotalQuestions int
	CorrectAnswers int
	QuizCount      int
}
