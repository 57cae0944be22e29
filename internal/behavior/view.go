package behavior

// Settings is the customer-visible subset of a Config, with optionality
// resolved: every field carries a concrete value. The instruction maps are
// excluded; tenants customize behavior, not platform templates.
type Settings struct {
	ReasoningEnabled   bool            `json:"reasoning_enabled"`
	ReasoningSteps     []ReasoningStep `json:"reasoning_steps"`
	ResponseStyle      ResponseStyle   `json:"response_style"`
	ToolRules          []string        `json:"tool_rules"`
	CustomInstructions string          `json:"custom_instructions"`
}

// View is the dashboard projection of a tenant's behavior configuration:
// the effective settings, which fields diverge from platform defaults, and
// the defaults themselves for side-by-side display.
type View struct {
	Settings
	HasCustomConfig  bool     `json:"has_custom_config"`
	CustomizedFields []string `json:"customized_fields"`
	Defaults         Settings `json:"defaults"`
}

// NewView builds the dashboard view from the default and override layers.
func NewView(def, override Config) View {
	customized := Customized(override)

	return View{
		Settings:         settingsOf(Merge(def, override)),
		HasCustomConfig:  !override.IsZero(),
		CustomizedFields: customized,
		Defaults:         settingsOf(def),
	}
}

func settingsOf(cfg Config) Settings {
	s := Settings{
		ReasoningSteps: []ReasoningStep{},
		ToolRules:      []string{},
	}

	if cfg.ReasoningEnabled != nil {
		s.ReasoningEnabled = *cfg.ReasoningEnabled
	}
	if cfg.ReasoningSteps != nil {
		s.ReasoningSteps = cfg.ReasoningSteps
	}
	if cfg.ResponseStyle != nil {
		s.ResponseStyle = *cfg.ResponseStyle
	}
	if cfg.ToolRules != nil {
		s.ToolRules = cfg.ToolRules
	}
	if cfg.CustomInstructions != nil {
		s.CustomInstructions = *cfg.CustomInstructions
	}

	return s
}
