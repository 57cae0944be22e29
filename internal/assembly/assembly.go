// Package assembly renders a tenant's effective behavior configuration plus
// request-time context into the instruction text handed to the language model.
// Rendering is a pure function over its inputs; the ambient clock enters only
// through Context.Now.
package assembly

import (
	"fmt"
	"strings"
	"time"

	"github.com/TropoEU/concierge/internal/behavior"
)

// PlatformLanguage is the default response language. The language
// requirement section is emitted only for tenants configured otherwise.
const PlatformLanguage = "en"

// Tool describes an integration available to the assistant during a
// conversation, as exposed by the tool-execution bridge.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Context carries the request-time inputs for a single prompt build.
type Context struct {
	ClientName string
	Language   string
	Now        time.Time
	Tools      []Tool
}

// Render assembles the final instruction text as ordered sections, each
// included only when its backing data is non-empty. The date/time section
// is always present so the model can resolve relative-date language.
func Render(cfg behavior.Config, rc Context) string {
	sections := make([]string, 0, 9)

	if s := renderIntro(cfg, rc); s != "" {
		sections = append(sections, s)
	}

	sections = append(sections, renderDateTime(rc.Now))

	if s := renderReasoning(cfg); s != "" {
		sections = append(sections, s)
	}
	if s := renderStyle(cfg); s != "" {
		sections = append(sections, s)
	}
	if s := renderToolRules(cfg); s != "" {
		sections = append(sections, s)
	}
	if len(rc.Tools) > 0 {
		sections = append(sections, renderTools(cfg, rc.Tools))
		sections = append(sections, renderAfterToolResult(cfg))
	}
	if cfg.CustomInstructions != nil && *cfg.CustomInstructions != "" {
		sections = append(sections, "CUSTOM INSTRUCTIONS\n"+*cfg.CustomInstructions)
	}
	if s := renderLanguage(cfg, rc.Language); s != "" {
		sections = append(sections, s)
	}

	return strings.Join(sections, "\n\n")
}

func renderIntro(cfg behavior.Config, rc Context) string {
	if cfg.IntroTemplate == nil || *cfg.IntroTemplate == "" {
		return ""
	}
	// empty client names substitute as empty rather than failing
	return strings.ReplaceAll(*cfg.IntroTemplate, "{client_name}", rc.ClientName)
}

// renderDateTime emits the current local date and time plus ISO dates for
// today and tomorrow. Dates use the caller's calendar via now's location,
// so "today" stays correct near midnight in the tenant's timezone.
func renderDateTime(now time.Time) string {
	var sb strings.Builder
	sb.WriteString("CURRENT DATE & TIME\n")
	sb.WriteString("Current date and time: ")
	sb.WriteString(now.Format("Monday, January 2, 2006 at 3:04 PM"))
	sb.WriteString("\nToday's date: ")
	sb.WriteString(now.Format("2006-01-02"))
	sb.WriteString("\nTomorrow's date: ")
	sb.WriteString(now.AddDate(0, 0, 1).Format("2006-01-02"))
	sb.WriteString("\nUse these dates to resolve relative expressions like \"today\" and \"tomorrow\" in customer requests.")
	return sb.String()
}

func renderReasoning(cfg behavior.Config) string {
	if cfg.ReasoningEnabled == nil || !*cfg.ReasoningEnabled {
		return ""
	}
	if len(cfg.ReasoningSteps) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("REASONING PROCESS\n")
	sb.WriteString("Work through the following in order before answering:")

	for i, step := range cfg.ReasoningSteps {
		fmt.Fprintf(&sb, "\n\nStep %d: %s\n%s", i+1, step.Title, step.Instruction)
	}

	return sb.String()
}

func renderStyle(cfg behavior.Config) string {
	var style behavior.ResponseStyle
	if cfg.ResponseStyle != nil {
		style = *cfg.ResponseStyle
	}

	lines := make([]string, 0, 3)

	if style.Tone != nil {
		if text, ok := lookup(cfg.ToneInstructions, *style.Tone, behavior.ToneInstruction); ok {
			lines = append(lines, text)
		}
	}
	if style.Formality != nil {
		if text, ok := lookup(cfg.FormalityInstructions, *style.Formality, behavior.FormalityInstruction); ok {
			lines = append(lines, text)
		}
	}
	if style.MaxSentences != nil && *style.MaxSentences > 0 {
		lines = append(lines, fmt.Sprintf("Keep each reply to at most %d sentences.", *style.MaxSentences))
	}

	if len(lines) == 0 {
		return ""
	}

	return "RESPONSE STYLE\n" + strings.Join(lines, "\n")
}

func renderToolRules(cfg behavior.Config) string {
	if len(cfg.ToolRules) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("TOOL USAGE RULES")
	for i, rule := range cfg.ToolRules {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, rule)
	}
	return sb.String()
}

// renderTools lists the available tools and the textual invocation syntax
// for models without native function calling.
func renderTools(cfg behavior.Config, tools []Tool) string {
	var sb strings.Builder
	sb.WriteString("AVAILABLE TOOLS")
	for _, tool := range tools {
		fmt.Fprintf(&sb, "\n- %s: %s", tool.Name, tool.Description)
	}

	format, _ := lookup(cfg.ToolInstructions, "format", behavior.ToolInstruction)
	if format != "" {
		sb.WriteString("\n\n")
		sb.WriteString(format)
	}

	return sb.String()
}

func renderAfterToolResult(cfg behavior.Config) string {
	text, _ := lookup(cfg.ToolInstructions, "after_result", behavior.ToolInstruction)
	return "AFTER A TOOL RESULT\n" + text
}

func renderLanguage(cfg behavior.Config, language string) string {
	if language == "" || language == PlatformLanguage {
		return ""
	}

	name, ok := lookup(cfg.LanguageNames, language, behavior.LanguageName)
	if !ok {
		// unknown codes render verbatim rather than failing
		name = language
	}

	return fmt.Sprintf(
		"LANGUAGE REQUIREMENT\nAlways respond in %s, regardless of the language the customer writes in.",
		name,
	)
}

// lookup resolves a key against the configured map first, then the built-in
// fallback. Keys unknown to both are reported as missing.
func lookup(configured map[string]string, key string, fallback func(string) (string, bool)) (string, bool) {
	if text, ok := configured[key]; ok && text != "" {
		return text, true
	}
	return fallback(key)
}
