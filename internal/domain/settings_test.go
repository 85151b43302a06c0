package domain

import (
	"errors"
	"testing"
	"time"
)

func TestValidateFillsDefaults(t *testing.T) {
	s := Settings{Duration: "90"}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if s.Font != DefaultFont {
		t.Errorf("Font = %q, want %q", s.Font, DefaultFont)
	}
	if s.Message != DefaultMessage {
		t.Errorf("Message = %q, want %q", s.Message, DefaultMessage)
	}
	if s.Spread != DefaultSpread || s.Freq != DefaultFreq {
		t.Errorf("gradient = (%g, %g), want (%g, %g)", s.Spread, s.Freq, DefaultSpread, DefaultFreq)
	}
}

func TestValidateKeepsExplicitValues(t *testing.T) {
	s := Settings{Until: "18:30", Font: "small", Message: "done", Spread: 1.5, Freq: 0.4}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if s.Font != "small" || s.Message != "done" || s.Spread != 1.5 || s.Freq != 0.4 {
		t.Errorf("explicit settings overwritten: %+v", s)
	}
}

func TestValidateRejectsEmptyTarget(t *testing.T) {
	s := Settings{}
	if err := s.Validate(); !errors.Is(err, ErrParse) {
		t.Fatalf("Validate() = %v, want ErrParse", err)
	}
}

func TestValidateRejectsNegativeThrottle(t *testing.T) {
	s := Settings{Duration: "5", Throttle: -time.Millisecond}
	if err := s.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error")
	}
}
