// Package model provides state management for statistical estimators.
package model

import (
	"fmt"
	"sync"
)

// StateManager manages the fitted state of an estimator in a thread-safe manner.
// Estimators hold one either as a field or embedded; the zero value is unfitted
// and ready to use.
type StateManager struct {
	Fitted bool // Public for JSON encoding
	mu     sync.RWMutex

	// Optional metadata - Public for JSON encoding
	NObservations int
	NRegressors   int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{
		Fitted: false,
	}
}

// IsFitted returns whether the estimator has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Fitted
}

// SetFitted marks the estimator as fitted.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = true
}

// Reset resets the fitted state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = false
	s.NObservations = 0
	s.NRegressors = 0
}

// SetDimensions sets the number of observations and design-matrix columns
// seen during fitting.
func (s *StateManager) SetDimensions(nObservations, nRegressors int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.NObservations = nObservations
	s.NRegressors = nRegressors
}

// GetDimensions returns the number of observations and design-matrix columns
// seen during fitting.
func (s *StateManager) GetDimensions() (nObservations, nRegressors int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.NObservations, s.NRegressors
}

// RequireFitted returns an error if the estimator has not been fitted.
func (s *StateManager) RequireFitted() error {
	if !s.IsFitted() {
		return fmt.Errorf("model has not been fitted yet. Call Fit() first")
	}
	return nil
}
