package model

import (
	"strings"
	"time"
)

// Module identifies one of the generation domains.
type Module string

const (
	ModuleCampaign Module = "campaign"
	ModulePitch    Module = "pitch"
	ModuleLead     Module = "lead"
)

// Modules lists every generation module in display order.
var Modules = []Module{ModuleCampaign, ModulePitch, ModuleLead}

// ParseModule maps a raw module name to a Module.
func ParseModule(s string) (Module, bool) {
	m := Module(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModuleCampaign, ModulePitch, ModuleLead:
		return m, true
	}
	return "", false
}

// HistoryLimit caps the number of logs returned by a history query.
const HistoryLimit = 50

// RequestLog is the stored record of one generation call.
// InputsJSON and OutputJSON hold encoded payloads; see the codec package.
type RequestLog struct {
	ID         int64     `json:"id"`
	UserID     int       `json:"user_id"`
	Module     Module    `json:"module"`
	InputsJSON string    `json:"-"`
	OutputJSON string    `json:"-"`
	ModelUsed  string    `json:"model_used"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryItem is a decoded RequestLog as returned to its owner.
type HistoryItem struct {
	ID        int64          `json:"id"`
	Module    Module         `json:"module"`
	CreatedAt time.Time      `json:"created_at"`
	Inputs    map[string]any `json:"inputs"`
	Output    map[string]any `json:"output"`
}

// GenerationResult is returned by a successful generation call.
type GenerationResult struct {
	LogID  int64  `json:"log_id"`
	Result string `json:"result"`
}

// AnalyticsSummary holds aggregate counts for the admin dashboard.
type AnalyticsSummary struct {
	TotalUsers    int64            `json:"total_users"`
	TotalRequests int64            `json:"total_requests"`
	ByModule      map[Module]int64 `json:"by_module"`
}
