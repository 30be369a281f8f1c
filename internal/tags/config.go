package tags

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spark-portfolio/spark/internal/schemas"
)

// LoadRuleset reads a ruleset override from a JSON file, validating it against
// the tag ruleset schema before use.
func LoadRuleset(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tag ruleset %s: %w", path, err)
	}

	if err := schemas.Validate(schemas.TagRulesetSchema, data); err != nil {
		return nil, fmt.Errorf("invalid tag ruleset %s: %w", path, err)
	}

	var rs Ruleset
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse tag ruleset %s: %w", path, err)
	}
	return &rs, nil
}
