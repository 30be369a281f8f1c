package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_TagRulesetValid(t *testing.T) {
	doc := []byte(`{
		"default": ["Problem Solving"],
		"rules": [
			{"keywords": ["web"], "tags": ["Web Programming"]}
		]
	}`)

	assert.NoError(t, Validate(TagRulesetSchema, doc))
}

func TestValidate_TagRulesetMissingDefault(t *testing.T) {
	doc := []byte(`{"rules": []}`)

	err := Validate(TagRulesetSchema, doc)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
	assert.Contains(t, err.Error(), "default")
}

func TestValidate_TagRulesetEmptyKeywordList(t *testing.T) {
	doc := []byte(`{
		"default": ["Problem Solving"],
		"rules": [
			{"keywords": [], "tags": ["Web Programming"]}
		]
	}`)

	var verr *ValidationError
	require.ErrorAs(t, Validate(TagRulesetSchema, doc), &verr)
}

func TestValidate_SuggestionCatalogValid(t *testing.T) {
	doc := []byte(`{
		"Programming": [
			{"courseCode": "ITCS414", "courseName": "Advanced Programming Practice", "relevancePercent": 90}
		]
	}`)

	assert.NoError(t, Validate(SuggestionCatalogSchema, doc))
}

func TestValidate_SuggestionCatalogRelevanceOutOfRange(t *testing.T) {
	doc := []byte(`{
		"Programming": [
			{"courseCode": "ITCS414", "courseName": "Advanced Programming Practice", "relevancePercent": 250}
		]
	}`)

	var verr *ValidationError
	require.ErrorAs(t, Validate(SuggestionCatalogSchema, doc), &verr)
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(TagRulesetSchema, []byte(`{not json`))
	assert.Error(t, err)
}
