package quiz

import (
	"fmt"
	"sync"
)

// Observer receives every new snapshot, synchronously, after a transition.
// Observers must not call back into the engine's operations.
type Observer func(State)

type Option func(*Engine)

func WithRules(rules Rules) Option {
	return func(e *Engine) {
		e.rules = rules
	}
}

// Engine owns one quiz attempt. Writers are serialized and each transition
// swaps the whole State, so readers only ever see complete snapshots.
type Engine struct {
	writeMu sync.Mutex

	mu        sync.RWMutex
	bank      []Question
	rules     Rules
	state     State
	observers map[int]Observer
	order     []int
	nextID    int
}

func NewEngine(bank []Question, opts ...Option) (*Engine, error) {
	if err := ValidateBank(bank); err != nil {
		return nil, err
	}

	e := &Engine{
		bank:      cloneBank(bank),
		rules:     DefaultRules,
		observers: make(map[int]Observer),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.rules.Lives < 1 || e.rules.PointsPerCorrect < 1 {
		return nil, fmt.Errorf("%w: lives=%d points=%d", ErrInvalidRules, e.rules.Lives, e.rules.PointsPerCorrect)
	}

	e.state = newState(e.bank, e.rules)
	return e, nil
}

// State returns the latest snapshot.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Subscribe registers fn and returns a func that removes it.
func (e *Engine) Subscribe(fn Observer) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.observers[id] = fn
	e.order = append(e.order, id)

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.observers, id)
		for i, v := range e.order {
			if v == id {
				e.order = append(e.order[:i:i], e.order[i+1:]...)
				break
			}
		}
	}
}

// SelectOption marks index as the chosen option of the current question.
// It does nothing once feedback is shown or the quiz is finished.
func (e *Engine) SelectOption(index int) State {
	return e.apply(func(s State) (State, bool) {
		return s.selectOption(index)
	})
}

// ConfirmAnswer scores the selected option against the current question.
// Without a selection or a current question it does nothing. It also does
// nothing once feedback is shown or the quiz is finished, so a single answer
// is scored, or costs a life, at most once.
func (e *Engine) ConfirmAnswer() State {
	return e.apply(State.confirmAnswer)
}

// NextQuestion advances past the current question, or finishes the quiz when
// lives are gone or the current question is the last one.
func (e *Engine) NextQuestion() State {
	return e.apply(State.nextQuestion)
}

// Restart starts the same bank over with full lives.
func (e *Engine) Restart() State {
	return e.apply(func(State) (State, bool) {
		return newState(e.bank, e.rules), true
	})
}

func (e *Engine) apply(transition func(State) (State, bool)) State {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	e.mu.Lock()
	next, changed := transition(e.state)
	if !changed {
		e.mu.Unlock()
		return next
	}
	e.state = next
	observers := make([]Observer, 0, len(e.order))
	for _, id := range e.order {
		observers = append(observers, e.observers[id])
	}
	e.mu.Unlock()

	for _, fn := range observers {
		fn(next)
	}

	return next
}
