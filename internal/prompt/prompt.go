// Package prompt builds the system and user prompts sent to the model for
// each generation module. All builders are pure.
package prompt

import (
	"fmt"

	"marketai/internal/model"
)

// Fields is a module form payload keyed by field name.
type Fields map[string]any

// Get returns the field as text. Missing and null fields render as "".
func (f Fields) Get(key string) string {
	v, ok := f[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// Pair is a system prompt and user prompt ready for the model.
type Pair struct {
	System string
	User   string
}

const (
	CampaignSystem = "You are a helpful marketing expert. Give clean, structured output."
	PitchSystem    = "You are a top sales coach. Be persuasive but clear."
	LeadSystem     = "You are a CRM lead scoring analyst. Output must be actionable."
)

// Campaign renders the campaign generation prompt.
func Campaign(f Fields) string {
	return fmt.Sprintf(`
Create a marketing campaign with structured sections.

Brand: %s
Product/Service: %s
Target Audience: %s
Platform: %s
Goal: %s
Tone: %s
Length: %s

Return output in these headings:
1) Campaign Idea
2) Value Proposition
3) 3 Ad Copies
4) Hashtags
5) CTA
6) Posting Schedule (3 days)
`, f.Get("brand"), f.Get("product"), f.Get("audience"), f.Get("platform"), f.Get("goal"), f.Get("tone"), f.Get("length"))
}

// Pitch renders the sales pitch prompt.
func Pitch(f Fields) string {
	return fmt.Sprintf(`
Generate a personalized sales pitch.

Company: %s
Customer Persona: %s
Pain Point: %s
Product: %s
Tone: %s
Length: %s

Return:
1) 30-sec Pitch
2) Email Pitch
3) LinkedIn DM Pitch
4) Objection Handling (3 objections)
`, f.Get("company"), f.Get("persona"), f.Get("pain"), f.Get("product"), f.Get("tone"), f.Get("length"))
}

// Lead renders the lead scoring prompt.
func Lead(f Fields) string {
	return fmt.Sprintf(`
Score this lead from 0-100 and explain.

Lead Name: %s
Budget: %s
Need: %s
Urgency: %s
Authority: %s
Industry: %s

Return:
- Score (0-100)
- Probability of conversion (%%)
- Hot/Warm/Cold label
- Reasons (bullet points)
- Next best actions (3)
`, f.Get("name"), f.Get("budget"), f.Get("need"), f.Get("urgency"), f.Get("authority"), f.Get("industry"))
}

// Build returns the prompt pair for module m.
func Build(m model.Module, f Fields) (Pair, error) {
	switch m {
	case model.ModuleCampaign:
		return Pair{System: CampaignSystem, User: Campaign(f)}, nil
	case model.ModulePitch:
		return Pair{System: PitchSystem, User: Pitch(f)}, nil
	case model.ModuleLead:
		return Pair{System: LeadSystem, User: Lead(f)}, nil
	}
	return Pair{}, fmt.Errorf("no prompt for module %q", m)
}
