package model

import "time"

type DndStats struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

type NPC struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Race        string    `json:"race,omitempty"`
	Class       string    `json:"class,omitempty"`
	Level       int       `json:"level,omitempty"`
	Stats       *DndStats `json:"stats,omitempty"`
	ArmorClass  int       `json:"armorClass,omitempty"`
	HitPoints   int       `json:"hitPoints,omitempty"`
	Personality string    `json:"personality,omitempty"`
	Appearance  string    `json:"appearance,omitempty"`
	Backstory   string    `json:"backstory,omitempty"`
	Portrait    string    `json:"portrait,omitempty"`
	Faction     string    `json:"faction,omitempty"`
	Location    string    `json:"location,omitempty"`
	CampaignID  string    `json:"campaignId"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
