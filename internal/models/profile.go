// ABOUTME: UserProfile model captured during onboarding.
// ABOUTME: Singleton record, overwritten wholesale and never partially mutated.
package models

import (
	"errors"
	"time"
)

// UserProfile holds the onboarding answers.
type UserProfile struct {
	Name      string `json:"name" yaml:"name"`
	Age       int    `json:"age" yaml:"age"`
	Goal      string `json:"goal" yaml:"goal"`
	CreatedAt string `json:"createdAt" yaml:"created_at"`
}

// NewUserProfile creates a profile stamped with now in RFC 3339.
func NewUserProfile(name string, age int, goal string, now time.Time) *UserProfile {
	return &UserProfile{
		Name:      name,
		Age:       age,
		Goal:      goal,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
}

// Validate checks that a stored profile is usable.
func (p *UserProfile) Validate() error {
	if p.Name == "" {
		return errors.New("missing name")
	}
	if p.Age < 0 {
		return errors.New("negative age")
	}
	return nil
}
