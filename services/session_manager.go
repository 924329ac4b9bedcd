package services

import (
	"context"
	"log"
	"sync"
)

// SessionManager hands out one QuizMachine per user identity. It is
// constructed once at process start with the machine dependencies and
// passed explicitly to the HTTP layer.
type SessionManager struct {
	mu       sync.Mutex
	deps     MachineDeps
	machines map[string]*QuizMachine
}

func NewSessionManager(deps MachineDeps) *SessionManager {
	return &SessionManager{
		deps:     deps,
		machines: make(map[string]*QuizMachine),
	}
}

// Machine returns the user's quiz machine, creating it on first use.
func (sm *SessionManager) Machine(email string) *QuizMachine {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	machine, ok := sm.machines[email]
	if !ok {
		machine = NewQuizMachine(email, sm.deps)
		sm.machines[email] = machine
	}
	return machine
}

// Teardown ends the user's session at logout: the timer stops, the
// machine is dropped and the saved in-progress quiz is cleared. The
// profile and history are untouched.
func (sm *SessionManager) Teardown(ctx context.Context, email string) {
	sm.mu.Lock()
	machine, ok := sm.machines[email]
	delete(sm.machines, email)
	sm.mu.Unlock()

	if ok {
		machine.Teardown()
	}
	if err := sm.deps.Saved.ClearQuiz(ctx, email); err != nil {
		log.Printf("Failed to clear saved quiz at logout for %s: %v", email, err)
	}
}
