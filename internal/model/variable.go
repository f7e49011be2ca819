package model

import "time"

type VariableType string

const (
	VariableString  VariableType = "STRING"
	VariableNumber  VariableType = "NUMBER"
	VariableBoolean VariableType = "BOOLEAN"
)

// Zero returns the default value for the type: NUMBER 0, BOOLEAN false, STRING "".
func (t VariableType) Zero() any {
	switch t {
	case VariableNumber:
		return float64(0)
	case VariableBoolean:
		return false
	default:
		return ""
	}
}

func (t VariableType) Valid() bool {
	switch t {
	case VariableString, VariableNumber, VariableBoolean:
		return true
	}
	return false
}

// Variable is a named value scoped to a scene (local) or a campaign (global).
// OwnerID holds the sceneId or campaignId depending on scope.
type Variable struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        VariableType `json:"type"`
	Value       any          `json:"value"`
	Description string       `json:"description,omitempty"`
	OwnerID     string       `json:"-"`
	CreatedAt   time.Time    `json:"created_at,omitempty"`
	UpdatedAt   time.Time    `json:"updated_at,omitempty"`
}
