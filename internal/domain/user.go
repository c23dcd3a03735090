package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FocusCategory is the life domain a user's 30-day program targets.
type FocusCategory string

const (
	FocusBani      FocusCategory = "bani"
	FocusSanatate  FocusCategory = "sanatate"
	FocusIubire    FocusCategory = "iubire"
	FocusIncredere FocusCategory = "incredere"
	FocusCalm      FocusCategory = "calm"
	FocusFocus     FocusCategory = "focus"
)

// FocusCategories lists every supported category, in catalog order.
var FocusCategories = []FocusCategory{
	FocusBani, FocusSanatate, FocusIubire, FocusIncredere, FocusCalm, FocusFocus,
}

// IsValid reports whether c is one of the supported categories.
func (c FocusCategory) IsValid() bool {
	for _, v := range FocusCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Intensity controls how forceful the selected affirmations are.
type Intensity string

const (
	IntensityGentle   Intensity = "gentle"
	IntensityModerate Intensity = "moderate"
	IntensityIntense  Intensity = "intense"
)

// Style controls the phrasing register of affirmations.
type Style string

const (
	StyleClassic   Style = "classic"
	StyleModern    Style = "modern"
	StyleSpiritual Style = "spiritual"
)

// Experience captures how familiar the user is with affirmation practice.
type Experience string

const (
	ExperienceIncepator Experience = "incepator"
	ExperienceMediu     Experience = "mediu"
	ExperienceAvansat   Experience = "avansat"
)

// TimePreference is when the user prefers their first session of the day.
type TimePreference string

const (
	TimeDimineata  TimePreference = "dimineata"
	TimeDupaAmiaza TimePreference = "dupa-amiaza"
	TimeSeara      TimePreference = "seara"
	TimeFlexibil   TimePreference = "flexibil"
)

// Preferences are the tunable part of a profile. Unlike the identity fields
// they may be edited after onboarding.
type Preferences struct {
	FocusArea FocusCategory `bson:"focusArea" json:"focusArea"`
	Intensity Intensity     `bson:"intensity" json:"intensity"`
	Style     Style         `bson:"style" json:"style"`
}

// User represents one program participant. The onboarding fields are captured
// once at registration; only Preferences change afterwards.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON

	BirthDate string `bson:"birthDate,omitempty" json:"birthDate,omitempty"` // DD/MM/YYYY, as entered
	Gender    string `bson:"gender,omitempty" json:"gender,omitempty"`

	Preferences Preferences `bson:"preferences" json:"preferences"`

	// Free-form onboarding answers.
	Goals          []string       `bson:"goals,omitempty" json:"goals,omitempty"`
	Experience     Experience     `bson:"experience,omitempty" json:"experience,omitempty"`
	Motivation     string         `bson:"motivation,omitempty" json:"motivation,omitempty"`
	TimePreference TimePreference `bson:"timePreference,omitempty" json:"timePreference,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultPreferences is what a profile gets when onboarding is skipped.
func DefaultPreferences() Preferences {
	return Preferences{
		FocusArea: FocusBani,
		Intensity: IntensityModerate,
		Style:     StyleClassic,
	}
}
