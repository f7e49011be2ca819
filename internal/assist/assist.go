// Package assist is the generative-content surface: prompt construction and
// response parsing for dialogue, NPC profiles, branch suggestions, quest
// hooks, and campaign analysis.
package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/lorewright/lorewright/internal/common"
	"github.com/lorewright/lorewright/internal/llm"
)

type Service struct {
	LLM llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

type DialogueRequest struct {
	Speaker         string `json:"speaker"`
	NPCPersonality  string `json:"npcPersonality,omitempty"`
	SceneSoFar      string `json:"sceneSoFar,omitempty"`
	CampaignContext string `json:"campaignContext,omitempty"`
}

// GenerateDialogue produces 2-3 sentences of in-character NPC dialogue.
func (s *Service) GenerateDialogue(ctx context.Context, req DialogueRequest) (string, error) {
	var b strings.Builder
	b.WriteString("You are a D&D game master creating dialogue for an NPC.\n\n")
	fmt.Fprintf(&b, "Speaker: %s\n", req.Speaker)
	if req.NPCPersonality != "" {
		fmt.Fprintf(&b, "NPC Personality: %s\n", req.NPCPersonality)
	}
	if req.SceneSoFar != "" {
		fmt.Fprintf(&b, "Scene Context: %s\n", req.SceneSoFar)
	}
	if req.CampaignContext != "" {
		fmt.Fprintf(&b, "Campaign Context: %s\n", req.CampaignContext)
	}
	b.WriteString("\nGenerate 2-3 sentences of dialogue that fits the character and context. Keep it concise and in-character.")

	response, err := s.LLM.Generate(ctx, b.String())
	if err != nil {
		return "", fmt.Errorf("failed to generate dialogue: %w", err)
	}
	return strings.TrimSpace(response), nil
}

type NPCRequest struct {
	Name            string `json:"name"`
	Role            string `json:"role,omitempty"`
	CampaignSetting string `json:"campaignSetting,omitempty"`
}

type NPCProfile struct {
	Personality    string   `json:"personality"`
	Backstory      string   `json:"backstory"`
	Traits         []string `json:"traits"`
	SuggestedClass string   `json:"suggestedClass"`
	SuggestedRace  string   `json:"suggestedRace"`
}

// GenerateNPCProfile builds an NPC profile. Unparseable responses fall back
// to a stock profile rather than failing the request.
func (s *Service) GenerateNPCProfile(ctx context.Context, req NPCRequest) (NPCProfile, error) {
	var b strings.Builder
	b.WriteString("You are a D&D game master creating an NPC profile.\n\n")
	fmt.Fprintf(&b, "NPC Name: %s\n", req.Name)
	if req.Role != "" {
		fmt.Fprintf(&b, "Role in Campaign: %s\n", req.Role)
	}
	if req.CampaignSetting != "" {
		fmt.Fprintf(&b, "Campaign Setting: %s\n", req.CampaignSetting)
	}
	b.WriteString(`
Generate a D&D NPC profile with the following structure:
1. A 2-3 sentence personality description
2. A 2-3 sentence backstory
3. Three character traits (brief, comma-separated)
4. A suggested D&D class
5. A suggested D&D race

Format your response as JSON with keys: personality, backstory, traits (array), suggestedClass, suggestedRace`)

	response, err := s.LLM.Generate(ctx, b.String())
	if err != nil {
		return NPCProfile{}, fmt.Errorf("failed to generate NPC profile: %w", err)
	}

	profile, err := common.ParseJSON[NPCProfile](response)
	if err != nil {
		return fallbackProfile(), nil
	}
	if profile.Personality == "" {
		profile.Personality = "Mysterious and reserved"
	}
	if profile.Backstory == "" {
		profile.Backstory = "A wanderer with unclear origins"
	}
	if len(profile.Traits) == 0 {
		profile.Traits = []string{"Mysterious", "Cautious"}
	}
	if profile.SuggestedClass == "" {
		profile.SuggestedClass = "Rogue"
	}
	if profile.SuggestedRace == "" {
		profile.SuggestedRace = "Human"
	}
	return profile, nil
}

func fallbackProfile() NPCProfile {
	return NPCProfile{
		Personality:    "Mysterious and reserved",
		Backstory:      "A wanderer with unclear origins",
		Traits:         []string{"Mysterious", "Cautious"},
		SuggestedClass: "Rogue",
		SuggestedRace:  "Human",
	}
}

type BranchRequest struct {
	CurrentScene        string `json:"currentScene"`
	PlayerActions       string `json:"playerActions,omitempty"`
	CampaignGoal        string `json:"campaignGoal,omitempty"`
	NumberOfSuggestions int    `json:"numberOfSuggestions,omitempty"`
}

// SuggestBranches proposes story branches for the current scene.
func (s *Service) SuggestBranches(ctx context.Context, req BranchRequest) ([]string, error) {
	n := req.NumberOfSuggestions
	if n <= 0 {
		n = 3
	}
	var b strings.Builder
	b.WriteString("You are a D&D game master suggesting story branches.\n\n")
	fmt.Fprintf(&b, "Current Scene: %s\n", req.CurrentScene)
	if req.PlayerActions != "" {
		fmt.Fprintf(&b, "Recent Player Actions: %s\n", req.PlayerActions)
	}
	if req.CampaignGoal != "" {
		fmt.Fprintf(&b, "Campaign Goal: %s\n", req.CampaignGoal)
	}
	fmt.Fprintf(&b, "\nSuggest %d different story branches/plot hooks that could happen next. Keep each suggestion to 1-2 sentences.\n\nFormat as a numbered list.", n)

	response, err := s.LLM.Generate(ctx, b.String())
	if err != nil {
		return nil, fmt.Errorf("failed to suggest branches: %w", err)
	}

	branches := common.ParseNumberedList(response)
	if len(branches) == 0 {
		branches = []string{"A mysterious stranger approaches", "Combat breaks out unexpectedly"}
	}
	return branches, nil
}

type QuestHookRequest struct {
	QuestTheme      string `json:"questTheme,omitempty"`
	CampaignContext string `json:"campaignContext,omitempty"`
	RewardType      string `json:"rewardType,omitempty"`
}

type QuestHook struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Objectives  []string `json:"objectives"`
	Reward      string   `json:"reward"`
}

func (s *Service) GenerateQuestHook(ctx context.Context, req QuestHookRequest) (QuestHook, error) {
	var b strings.Builder
	b.WriteString("You are a D&D game master creating a quest hook.\n\n")
	if req.QuestTheme != "" {
		fmt.Fprintf(&b, "Quest Theme: %s\n", req.QuestTheme)
	}
	if req.CampaignContext != "" {
		fmt.Fprintf(&b, "Campaign Context: %s\n", req.CampaignContext)
	}
	if req.RewardType != "" {
		fmt.Fprintf(&b, "Expected Reward Type: %s\n", req.RewardType)
	}
	b.WriteString(`
Generate a D&D quest with the following structure:
1. A compelling quest title (5-10 words)
2. A 2-3 sentence quest description/hook
3. Three clear quest objectives
4. A suitable reward

Format your response as JSON with keys: title, description, objectives (array), reward`)

	response, err := s.LLM.Generate(ctx, b.String())
	if err != nil {
		return QuestHook{}, fmt.Errorf("failed to generate quest hook: %w", err)
	}

	hook, err := common.ParseJSON[QuestHook](response)
	if err != nil {
		return fallbackQuestHook(), nil
	}
	if hook.Title == "" {
		hook.Title = "A Mysterious Task"
	}
	if hook.Description == "" {
		hook.Description = "Someone needs your help."
	}
	if len(hook.Objectives) == 0 {
		hook.Objectives = []string{"Complete the task", "Report back"}
	}
	if hook.Reward == "" {
		hook.Reward = "100 gold pieces"
	}
	return hook, nil
}

func fallbackQuestHook() QuestHook {
	return QuestHook{
		Title:       "A Mysterious Task",
		Description: "Someone needs your help.",
		Objectives:  []string{"Complete the task", "Report back"},
		Reward:      "100 gold pieces",
	}
}

type AnalyzeRequest struct {
	CampaignName        string `json:"campaignName"`
	CampaignDescription string `json:"campaignDescription,omitempty"`
	ScenesCount         int    `json:"scenesCount,omitempty"`
	NPCsCount           int    `json:"npcsCount,omitempty"`
	QuestsCount         int    `json:"questsCount,omitempty"`
}

type CampaignAnalysis struct {
	Summary               string   `json:"summary"`
	Strengths             []string `json:"strengths"`
	SuggestedImprovements []string `json:"suggestedImprovements"`
	NarrativeFlow         string   `json:"narrativeFlow"`
}

func (s *Service) AnalyzeCampaign(ctx context.Context, req AnalyzeRequest) (CampaignAnalysis, error) {
	var b strings.Builder
	b.WriteString("You are a D&D campaign designer reviewing a campaign for narrative quality.\n\n")
	fmt.Fprintf(&b, "Campaign Name: %s\n", req.CampaignName)
	if req.CampaignDescription != "" {
		fmt.Fprintf(&b, "Description: %s\n", req.CampaignDescription)
	}
	if req.ScenesCount > 0 {
		fmt.Fprintf(&b, "Number of Scenes: %d\n", req.ScenesCount)
	}
	if req.NPCsCount > 0 {
		fmt.Fprintf(&b, "Number of NPCs: %d\n", req.NPCsCount)
	}
	if req.QuestsCount > 0 {
		fmt.Fprintf(&b, "Number of Quests: %d\n", req.QuestsCount)
	}
	b.WriteString(`
Analyze this campaign and provide:
1. A brief summary (2-3 sentences)
2. Three strengths of the campaign
3. Three suggested improvements
4. Assessment of narrative flow (1-2 sentences)

Format your response as JSON with keys: summary, strengths (array), suggestedImprovements (array), narrativeFlow`)

	response, err := s.LLM.Generate(ctx, b.String())
	if err != nil {
		return CampaignAnalysis{}, fmt.Errorf("failed to analyze campaign: %w", err)
	}

	analysis, err := common.ParseJSON[CampaignAnalysis](response)
	if err != nil {
		return CampaignAnalysis{
			Summary:               "A promising campaign with good potential.",
			Strengths:             []string{"Good structure", "Engaging NPCs"},
			SuggestedImprovements: []string{"Add more detail", "Expand quest hooks"},
			NarrativeFlow:         "The campaign flows well with clear progression.",
		}, nil
	}
	return analysis, nil
}
