package behavior

import (
	"maps"
	"slices"
)

// Merge produces the effective configuration from a platform default and a
// tenant override. Nil override fields leave the default untouched; non-nil
// slices replace wholesale; maps merge key-wise with override keys winning;
// ResponseStyle merges field-wise; scalars replace.
//
// Merge is pure: both inputs are left unmodified and the result shares no
// mutable state with either. It is idempotent, so
// Merge(d, Merge(d, o)) == Merge(d, o).
func Merge(def, override Config) Config {
	merged := def.Clone()

	if override.ReasoningEnabled != nil {
		v := *override.ReasoningEnabled
		merged.ReasoningEnabled = &v
	}
	if override.ReasoningSteps != nil {
		merged.ReasoningSteps = slices.Clone(override.ReasoningSteps)
	}
	if override.ResponseStyle != nil {
		merged.ResponseStyle = mergeStyle(merged.ResponseStyle, override.ResponseStyle)
	}
	if override.ToolRules != nil {
		merged.ToolRules = slices.Clone(override.ToolRules)
	}
	if override.CustomInstructions != nil {
		v := *override.CustomInstructions
		merged.CustomInstructions = &v
	}
	if override.IntroTemplate != nil {
		v := *override.IntroTemplate
		merged.IntroTemplate = &v
	}

	merged.ToneInstructions = mergeMap(merged.ToneInstructions, override.ToneInstructions)
	merged.FormalityInstructions = mergeMap(merged.FormalityInstructions, override.FormalityInstructions)
	merged.LanguageNames = mergeMap(merged.LanguageNames, override.LanguageNames)
	merged.ToolInstructions = mergeMap(merged.ToolInstructions, override.ToolInstructions)

	return merged
}

func mergeStyle(def, override *ResponseStyle) *ResponseStyle {
	merged := &ResponseStyle{}
	if def != nil {
		*merged = *def
	}

	if override.Tone != nil {
		v := *override.Tone
		merged.Tone = &v
	}
	if override.Formality != nil {
		v := *override.Formality
		merged.Formality = &v
	}
	if override.MaxSentences != nil {
		v := *override.MaxSentences
		merged.MaxSentences = &v
	}

	return merged
}

func mergeMap(def, override map[string]string) map[string]string {
	if override == nil {
		return def
	}
	if def == nil {
		return maps.Clone(override)
	}

	merged := maps.Clone(def)
	maps.Copy(merged, override)
	return merged
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	clone := c

	if c.ReasoningEnabled != nil {
		v := *c.ReasoningEnabled
		clone.ReasoningEnabled = &v
	}
	if c.ReasoningSteps != nil {
		clone.ReasoningSteps = slices.Clone(c.ReasoningSteps)
	}
	if c.ResponseStyle != nil {
		style := *c.ResponseStyle
		if c.ResponseStyle.Tone != nil {
			v := *c.ResponseStyle.Tone
			style.Tone = &v
		}
		if c.ResponseStyle.Formality != nil {
			v := *c.ResponseStyle.Formality
			style.Formality = &v
		}
		if c.ResponseStyle.MaxSentences != nil {
			v := *c.ResponseStyle.MaxSentences
			style.MaxSentences = &v
		}
		clone.ResponseStyle = &style
	}
	if c.ToolRules != nil {
		clone.ToolRules = slices.Clone(c.ToolRules)
	}
	if c.CustomInstructions != nil {
		v := *c.CustomInstructions
		clone.CustomInstructions = &v
	}
	if c.IntroTemplate != nil {
		v := *c.IntroTemplate
		clone.IntroTemplate = &v
	}

	clone.ToneInstructions = maps.Clone(c.ToneInstructions)
	clone.FormalityInstructions = maps.Clone(c.FormalityInstructions)
	clone.LanguageNames = maps.Clone(c.LanguageNames)
	clone.ToolInstructions = maps.Clone(c.ToolInstructions)

	return clone
}

// Customized returns the JSON field names a tenant override has set,
// in declaration order. Used by the dashboard view to mark which settings
// diverge from platform defaults.
func Customized(override Config) []string {
	fields := make([]string, 0, 10)

	if override.ReasoningEnabled != nil {
		fields = append(fields, "reasoning_enabled")
	}
	if override.ReasoningSteps != nil {
		fields = append(fields, "reasoning_steps")
	}
	if override.ResponseStyle != nil {
		fields = append(fields, "response_style")
	}
	if override.ToolRules != nil {
		fields = append(fields, "tool_rules")
	}
	if override.CustomInstructions != nil {
		fields = append(fields, "custom_instructions")
	}
	if override.IntroTemplate != nil {
		fields = append(fields, "intro_template")
	}
	if override.ToneInstructions != nil {
		fields = append(fields, "tone_instructions")
	}
	if override.FormalityInstructions != nil {
		fields = append(fields, "formality_instructions")
	}
	if override.LanguageNames != nil {
		fields = append(fields, "language_names")
	}
	if override.ToolInstructions != nil {
		fields = append(fields, "tool_instructions")
	}

	return fields
}
