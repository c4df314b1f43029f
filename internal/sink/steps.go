package sink

import "sync"

// stepStacks keeps the open steps of every exchange apart.
// Records without an exchange id share the "" stack. The zero value is ready to use.
type stepStacks[T any] struct {
	mu     sync.Mutex
	stacks map[string][]T
}

func (s *stepStacks[T]) push(exchangeID string, step T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stacks == nil {
		s.stacks = make(map[string][]T)
	}

	s.stacks[exchangeID] = append(s.stacks[exchangeID], step)
}

// pop removes the step opened last in the exchange.
func (s *stepStacks[T]) pop(exchangeID string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var step T

	stack := s.stacks[exchangeID]
	if len(stack) == 0 {
		return step, false
	}

	step = stack[len(stack)-1]

	if len(stack) == 1 {
		delete(s.stacks, exchangeID)
	} else {
		s.stacks[exchangeID] = stack[:len(stack)-1]
	}

	return step, true
}

// top returns the step opened last in the exchange.
func (s *stepStacks[T]) top(exchangeID string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var step T

	stack := s.stacks[exchangeID]
	if len(stack) == 0 {
		return step, false
	}

	return stack[len(stack)-1], true
}
