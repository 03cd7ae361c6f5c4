package quiz

// Feedback is the verdict shown between confirming an answer and moving on.
type Feedback int

const (
	FeedbackCorrect Feedback = iota + 1
	FeedbackIncorrect
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "correct"
	case FeedbackIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Rules holds the tunables of one quiz attempt.
type Rules struct {
	Lives            int
	PointsPerCorrect int
}

var DefaultRules = Rules{
	Lives:            3,
	PointsPerCorrect: 100,
}

// State is an immutable snapshot of a quiz attempt. Every engine operation
// produces a new State; existing values are never changed.
type State struct {
	questions    []Question
	rules        Rules
	currentIndex int
	selected     int
	hasSelected  bool
	score        int
	lives        int
	finished     bool
	feedback     Feedback
	hasFeedback  bool
}

func newState(questions []Question, rules Rules) State {
	return State{
		questions: questions,
		rules:     rules,
		lives:     rules.Lives,
	}
}

func (s State) Questions() []Question {
	return cloneBank(s.questions)
}

func (s State) QuestionCount() int {
	return len(s.questions)
}

func (s State) CurrentIndex() int {
	return s.currentIndex
}

func (s State) Selected() (int, bool) {
	return s.selected, s.hasSelected
}

func (s State) Score() int {
	return s.score
}

func (s State) Lives() int {
	return s.lives
}

func (s State) IsFinished() bool {
	return s.finished
}

func (s State) Feedback() (Feedback, bool) {
	return s.feedback, s.hasFeedback
}

func (s State) Rules() Rules {
	return s.rules
}

// CurrentQuestion returns the question at the current index, if any.
func (s State) CurrentQuestion() (Question, bool) {
	if s.currentIndex < 0 || s.currentIndex >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.currentIndex].clone(), true
}

func (s State) IsLastQuestion() bool {
	return s.currentIndex == len(s.questions)-1
}

// MaxScore is the score of a run with every answer correct.
func (s State) MaxScore() int {
	return len(s.questions) * s.rules.PointsPerCorrect
}

func (s State) selectOption(index int) (State, bool) {
	if s.finished || s.hasFeedback {
		return s, false
	}
	if s.hasSelected && s.selected == index {
		return s, false
	}

	s.selected = index
	s.hasSelected = true
	return s, true
}

func (s State) confirmAnswer() (State, bool) {
	if !s.hasSelected || s.hasFeedback || s.finished {
		return s, false
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return s, false
	}

	if s.selected == q.CorrectIndex {
		s.score += s.rules.PointsPerCorrect
		s.feedback = FeedbackCorrect
	} else {
		s.lives--
		s.feedback = FeedbackIncorrect
	}
	s.hasFeedback = true
	return s, true
}

func (s State) nextQuestion() (State, bool) {
	if s.lives <= 0 || s.currentIndex >= len(s.questions)-1 {
		if s.finished && !s.hasFeedback {
			return s, false
		}
		s.finished = true
		s.feedback, s.hasFeedback = 0, false
		return s, true
	}

	s.currentIndex++
	s.selected, s.hasSelected = 0, false
	s.feedback, s.hasFeedback = 0, false
	if s.currentIndex >= len(s.questions) {
		s.finished = true
	}
	return s, true
}
