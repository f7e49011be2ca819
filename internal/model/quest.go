package model

import "time"

type QuestStatus string

const (
	QuestNotStarted QuestStatus = "NOT_STARTED"
	QuestActive     QuestStatus = "ACTIVE"
	QuestCompleted  QuestStatus = "COMPLETED"
	QuestFailed     QuestStatus = "FAILED"
)

type QuestObjective struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type Quest struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Objectives  []QuestObjective `json:"objectives"`
	Status      QuestStatus      `json:"status"`
	CampaignID  string           `json:"campaignId"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
