package profile

import (
	"errors"
	"fmt"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrExerciseExists   = errors.New("exercise already exists")
)

// Unit is the measure an exercise is counted in.
type Unit string

const (
	UnitReps       Unit = "раз"
	UnitSeconds    Unit = "сек"
	UnitMinutes    Unit = "мин"
	UnitKilometers Unit = "км"
	UnitKilograms  Unit = "кг"
)

func (u Unit) IsValid() bool {
	switch u {
	case UnitReps, UnitSeconds, UnitMinutes, UnitKilometers, UnitKilograms:
		return true
	default:
		return false
	}
}

func ParseUnit(input string) (Unit, error) {
	u := Unit(input)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid unit: %q", input)
	}
	return u, nil
}

const (
	DefaultExerciseName   = "Отжимания"
	DefaultExerciseTarget = 50
	DefaultXPPerRep       = 1
	DefaultUnit           = UnitReps
)

type Exercise struct {
	Name     string  `json:"name"`
	Target   int     `json:"target"`
	Count    int     `json:"count"`
	Lifetime int     `json:"lifetime"`
	XPPerRep float64 `json:"xpPerRep"`
	Unit     Unit    `json:"unit"`
}

type Settings struct {
	Notify bool     `json:"notify"`
	Times  []string `json:"times"`
	Days   []string `json:"days"`
}

func DefaultSettings() Settings {
	return Settings{
		Notify: false,
		Times:  []string{"10:00"},
		Days:   []string{},
	}
}

type Profile struct {
	AccountID          int        `json:"accountId"`
	Exercises          []Exercise `json:"exercises"`
	LastDate           string     `json:"lastDate"`
	Streak             int        `json:"streak"`
	TotalLifetimeCount int        `json:"totalLifetimeCount"`
	TotalXP            float64    `json:"totalXP"`
	Settings           Settings   `json:"settings"`
	SchemaVersion      int        `json:"-"`
}

// New creates the initial profile for an account, seeded with
// the default exercise at zero progress.
func New(accountID int, today string) *Profile {
	return &Profile{
		AccountID: accountID,
		Exercises: []Exercise{
			{
				Name:     DefaultExerciseName,
				Target:   DefaultExerciseTarget,
				Count:    0,
				Lifetime: 0,
				XPPerRep: DefaultXPPerRep,
				Unit:     DefaultUnit,
			},
		},
		LastDate:      today,
		Streak:        0,
		Settings:      DefaultSettings(),
		SchemaVersion: SchemaVersion,
	}
}

// Exercise returns a pointer into the profile's exercise list.
func (p *Profile) Exercise(name string) (*Exercise, error) {
	for i := range p.Exercises {
		if p.Exercises[i].Name == name {
			return &p.Exercises[i], nil
		}
	}
	return nil, ErrExerciseNotFound
}

// HasActivity reports whether any exercise has a positive current-day count.
func (p *Profile) HasActivity() bool {
	for i := range p.Exercises {
		if p.Exercises[i].Count > 0 {
			return true
		}
	}
	return false
}

// CloneExercises returns a deep copy of the exercise list.
func (p *Profile) CloneExercises() []Exercise {
	cloned := make([]Exercise, len(p.Exercises))
	copy(cloned, p.Exercises)
	return cloned
}

// AddExercise appends a new exercise. Names are unique within a profile.
func (p *Profile) AddExercise(e Exercise) error {
	if e.Name == "" {
		return errors.New("exercise name empty")
	}
	if e.Target <= 0 {
		return errors.New("exercise target must be positive")
	}
	if e.XPPerRep <= 0 {
		e.XPPerRep = DefaultXPPerRep
	}
	if e.Unit == "" {
		e.Unit = DefaultUnit
	}
	if !e.Unit.IsValid() {
		return fmt.Errorf("invalid unit: %q", e.Unit)
	}
	if _, err := p.Exercise(e.Name); err == nil {
		return ErrExerciseExists
	}

	e.Count = 0
	e.Lifetime = 0
	p.Exercises = append(p.Exercises, e)
	return nil
}
