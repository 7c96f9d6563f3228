package tui

import "fmt"

// Editor receives answers as they are collected. Set rejects values the
// underlying record cannot hold; the renderer reports the error and asks
// again.
type Editor interface {
	Value(field string) string
	Set(field, value string) error
}

// State is the Editor Render uses: a plain value map with optional per-field
// validation.
type State struct {
	values   map[string]string
	validate func(field, value string) error
}

// NewState seeds the state with prefilled values.
func NewState(prefill map[string]string, validate func(field, value string) error) *State {
	values := make(map[string]string, len(prefill))
	for key, value := range prefill {
		values[key] = value
	}
	return &State{values: values, validate: validate}
}

// Value returns the current value of field.
func (s *State) Value(field string) string {
	return s.values[field]
}

// Set validates and stores value.
func (s *State) Set(field, value string) error {
	if s.validate != nil {
		if err := s.validate(field, value); err != nil {
			return err
		}
	}
	s.values[field] = value
	return nil
}

// Values returns a copy of the collected values.
func (s *State) Values() map[string]string {
	out := make(map[string]string, len(s.values))
	for key, value := range s.values {
		out[key] = value
	}
	return out
}

func (s *State) String() string {
	return fmt.Sprintf("tui.State(%d values)", len(s.values))
}
