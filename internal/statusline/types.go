package statusline

import "encoding/json"

// Input is the JSON structure received from Claude Code
type Input struct {
	SessionID string         `json:"session_id"`
	Model     *ModelInfo     `json:"model"`
	Workspace *WorkspaceInfo `json:"workspace"`
	Cost      *CostInfo      `json:"cost"`

	// Context is decoded lazily so a malformed window degrades to
	// "unknown" instead of failing the whole document.
	Context json.RawMessage `json:"context_window"`
}

// ModelInfo contains model information
type ModelInfo struct {
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	ID          string `json:"id"`
}

// DefaultModelLabel is shown when the payload names no model.
const DefaultModelLabel = "Claude"

// Label returns the first non-empty of display name, name and id.
func (m *ModelInfo) Label() string {
	if m == nil {
		return DefaultModelLabel
	}
	for _, v := range []string{m.DisplayName, m.Name, m.ID} {
		if v != "" {
			return v
		}
	}
	return DefaultModelLabel
}

// WorkspaceInfo contains workspace paths
type WorkspaceInfo struct {
	ProjectDir string `json:"project_dir"`
	CurrentDir string `json:"current_dir"`
	Cwd        string `json:"cwd"`
}

// CostInfo contains session cost
type CostInfo struct {
	TotalCostUSD float64 `json:"total_cost_usd"`
}

// contextWindow is the decoded form of Input.Context
type contextWindow struct {
	Size         *float64        `json:"context_window_size"`
	CurrentUsage json.RawMessage `json:"current_usage"`
	Warning      json.RawMessage `json:"warning"`
}

// tokenCounters contains token counts; missing counters decode as zero
type tokenCounters struct {
	InputTokens         float64 `json:"input_tokens"`
	OutputTokens        float64 `json:"output_tokens"`
	CacheCreationTokens float64 `json:"cache_creation_input_tokens"`
	CacheReadTokens     float64 `json:"cache_read_input_tokens"`
}

func (c tokenCounters) total() float64 {
	return c.InputTokens + c.OutputTokens + c.CacheCreationTokens + c.CacheReadTokens
}

// Warning is an optional hint that overrides the context alert label.
type Warning string

const (
	WarningNone        Warning = ""
	WarningAutoCompact Warning = "auto-compact"
	WarningLow         Warning = "low"
)

// ContextUsage is the resolved context window usage
type ContextUsage struct {
	Percent float64
	Tokens  int64
	Warning Warning
}
