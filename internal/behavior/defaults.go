package behavior

// Recognized tone and formality values. Callers validate enum membership
// before a config reaches this package; unknown keys degrade to omitted
// directives at render time.
const (
	ToneFriendly     = "friendly"
	ToneProfessional = "professional"
	ToneCasual       = "casual"

	FormalityCasual  = "casual"
	FormalityNeutral = "neutral"
	FormalityFormal  = "formal"
)

const defaultIntroTemplate = "You are a helpful customer support assistant for {client_name}."

var defaultReasoningSteps = []ReasoningStep{
	{
		Title:       "UNDERSTAND",
		Instruction: "Read the customer's message carefully and identify what they are actually asking for, including any implicit needs.",
	},
	{
		Title:       "IDENTIFY",
		Instruction: "Determine whether answering requires account data, a tool invocation, or general knowledge about the business.",
	},
	{
		Title:       "RESPOND",
		Instruction: "Compose a direct answer to the request. If information is missing, ask one clarifying question instead of guessing.",
	},
}

var defaultToneInstructions = map[string]string{
	ToneFriendly:     "Keep a warm, friendly tone and address the customer like a person, not a ticket number.",
	ToneProfessional: "Maintain a courteous, professional tone appropriate for business correspondence.",
	ToneCasual:       "Use a relaxed, conversational tone, as if chatting with a colleague.",
}

var defaultFormalityInstructions = map[string]string{
	FormalityCasual:  "Contractions and informal phrasing are fine.",
	FormalityNeutral: "Use plain, neutral phrasing without slang or stiff formalities.",
	FormalityFormal:  "Use complete sentences and formal phrasing; avoid contractions and slang.",
}

var defaultLanguageNames = map[string]string{
	"en": "English",
	"he": "Hebrew",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"nl": "Dutch",
	"ru": "Russian",
	"ar": "Arabic",
}

var defaultToolInstructions = map[string]string{
	"format": `To use a tool, reply with exactly one line in this form and nothing else:
[TOOL: tool_name {"param": "value"}]
The tool result will be returned to you in the next message.`,
	"after_result": "When you receive a tool result, summarize the relevant outcome for the customer in plain language. Never paste raw tool output into your reply.",
}

// ToneInstruction returns the built-in directive for a tone key.
func ToneInstruction(key string) (string, bool) {
	v, ok := defaultToneInstructions[key]
	return v, ok
}

// FormalityInstruction returns the built-in directive for a formality key.
func FormalityInstruction(key string) (string, bool) {
	v, ok := defaultFormalityInstructions[key]
	return v, ok
}

// LanguageName returns the built-in display name for a language code.
func LanguageName(code string) (string, bool) {
	v, ok := defaultLanguageNames[code]
	return v, ok
}

// ToolInstruction returns the built-in template for a tool instruction key.
func ToolInstruction(key string) (string, bool) {
	v, ok := defaultToolInstructions[key]
	return v, ok
}

// Defaults returns the built-in platform configuration. It backs the seed
// migration and is the fallback whenever storage cannot produce a default
// row, so prompt assembly always has a complete configuration to work from.
func Defaults() Config {
	enabled := true
	intro := defaultIntroTemplate

	cfg := Config{
		ReasoningEnabled:      &enabled,
		ReasoningSteps:        defaultReasoningSteps,
		ResponseStyle:         defaultResponseStyle(),
		ToolRules:             []string{},
		IntroTemplate:         &intro,
		ToneInstructions:      defaultToneInstructions,
		FormalityInstructions: defaultFormalityInstructions,
		LanguageNames:         defaultLanguageNames,
		ToolInstructions:      defaultToolInstructions,
	}

	return cfg.Clone()
}

func defaultResponseStyle() *ResponseStyle {
	tone := ToneFriendly
	formality := FormalityNeutral
	return &ResponseStyle{
		Tone:      &tone,
		Formality: &formality,
	}
}
