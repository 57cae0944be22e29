// Package behavior implements the prompt-behavior configuration domain.
// It provides the PromptConfig type, persistence for the platform default
// and per-tenant overrides, and the deterministic merge that produces a
// tenant's effective configuration.
package behavior

// ReasoningStep is a single ordered step in the assistant's reasoning process.
type ReasoningStep struct {
	Title       string `json:"title"`
	Instruction string `json:"instruction"`
}

// ResponseStyle controls the tone, formality, and length of responses.
// Nil fields inherit the platform default.
type ResponseStyle struct {
	Tone         *string `json:"tone,omitempty"`
	Formality    *string `json:"formality,omitempty"`
	MaxSentences *int    `json:"max_sentences,omitempty"`
}

// Config is the unit persisted and merged. Every field is optional so the
// same type serves both the full platform default and a tenant's partial
// override: nil means "inherit", a non-nil value replaces.
//
// Slices carry whole-value replacement semantics; maps merge key-wise with
// override keys winning; ResponseStyle merges field-wise.
type Config struct {
	ReasoningEnabled   *bool           `json:"reasoning_enabled,omitempty"`
	ReasoningSteps     []ReasoningStep `json:"reasoning_steps,omitempty"`
	ResponseStyle      *ResponseStyle  `json:"response_style,omitempty"`
	ToolRules          []string        `json:"tool_rules,omitempty"`
	CustomInstructions *string         `json:"custom_instructions,omitempty"`
	IntroTemplate      *string         `json:"intro_template,omitempty"`

	ToneInstructions      map[string]string `json:"tone_instructions,omitempty"`
	FormalityInstructions map[string]string `json:"formality_instructions,omitempty"`
	LanguageNames         map[string]string `json:"language_names,omitempty"`
	ToolInstructions      map[string]string `json:"tool_instructions,omitempty"`
}

// IsZero reports whether no field has been set. A zero Config stored as a
// tenant override means "use platform defaults".
func (c Config) IsZero() bool {
	return c.ReasoningEnabled == nil &&
		c.ReasoningSteps == nil &&
		c.ResponseStyle == nil &&
		c.ToolRules == nil &&
		c.CustomInstructions == nil &&
		c.IntroTemplate == nil &&
		c.ToneInstructions == nil &&
		c.FormalityInstructions == nil &&
		c.LanguageNames == nil &&
		c.ToolInstructions == nil
}
