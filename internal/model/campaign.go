package model

import (
	"time"

	"github.com/lorewright/lorewright/internal/graph"
)

type Campaign struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CoverImage  string    `json:"coverImage,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Scene is one narrative unit within a campaign. Its graph is the unit of
// persistence for the editor.
type Scene struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Order       int              `json:"order"`
	CampaignID  string           `json:"campaignId"`
	Graph       graph.SceneGraph `json:"graph"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
