package behavior

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/TropoEU/concierge/pkg/query"
	"github.com/TropoEU/concierge/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "prompt_configs", "pc").
	Project("id", "ID").
	Project("tenant_id", "TenantID").
	Project("config", "Config").
	Project("updated_at", "UpdatedAt")

// record is a stored configuration row. The platform default row uses
// uuid.Nil as its tenant identifier.
type record struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Raw       []byte
	UpdatedAt time.Time
}

func scanRecord(s repository.Scanner) (record, error) {
	var r record
	err := s.Scan(
		&r.ID,
		&r.TenantID,
		&r.Raw,
		&r.UpdatedAt,
	)
	return r, err
}

// DecodeConfig decodes a stored configuration document field by field.
// Fields that are missing, null, or of the wrong shape are dropped rather
// than failing the whole document, so a malformed override degrades to
// "not customized" instead of breaking prompt assembly.
func DecodeConfig(data []byte) Config {
	var cfg Config

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return cfg
	}

	decode := func(key string, dst any) {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			return
		}
		// errors discard only the offending field
		json.Unmarshal(raw, dst)
	}

	decode("reasoning_enabled", &cfg.ReasoningEnabled)
	decode("reasoning_steps", &cfg.ReasoningSteps)
	decode("response_style", &cfg.ResponseStyle)
	decode("tool_rules", &cfg.ToolRules)
	decode("custom_instructions", &cfg.CustomInstructions)
	decode("intro_template", &cfg.IntroTemplate)
	decode("tone_instructions", &cfg.ToneInstructions)
	decode("formality_instructions", &cfg.FormalityInstructions)
	decode("language_names", &cfg.LanguageNames)
	decode("tool_instructions", &cfg.ToolInstructions)

	return cfg
}
