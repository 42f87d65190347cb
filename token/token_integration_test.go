// ==============================================================================================
// FILE: token/token_integration_test.go
// ==============================================================================================
// PURPOSE: Tests the integration of the keyword map with the lookup function across various
//          categories of keywords to ensure no category is missing.
// ==============================================================================================

package token

import "testing"

func TestIntegrationKeywordCategories(t *testing.T) {
	categories := map[string][]struct {
		input string
		want  TokenType
	}{
		"Definitions": {
			{"noun", NOUN},
			{"verb", VERB},
			{"adjective", ADJECTIVE},
			{"so", SO},
		},
		"Logic": {
			{"and", AND},
			{"or", OR},
			{"not", NOT},
		},
		"Control": {
			{"hence", HENCE},
			{"when", WHEN},
			{"it", IT},
		},
		"Prepositions": {
			{"is", IS},
			{"for", FOR},
			{"as", AS},
			{"the", THE},
			{"to", TO},
		},
		"Literals": {
			{"true", TRUE},
			{"false", FALSE},
		},
		"Types": {
			{"Number", TYPE_NUMBER},
			{"Text", TYPE_TEXT},
			{"Notion", TYPE_NOTION},
		},
	}

	for category, tests := range categories {
		t.Run(category, func(t *testing.T) {
			for _, tt := range tests {
				got := LookupIdent(tt.input)
				if got != tt.want {
					t.Errorf("FAIL [%s]: LookupIdent(%q) = %q, want %q", category, tt.input, got, tt.want)
				}
			}
		})
	}
}
