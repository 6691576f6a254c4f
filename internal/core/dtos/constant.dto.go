package dtos

// The STRATZ GraphQL API is only used to fetch constants (item and hero
// names), so the query is hardcoded here instead of building a query layer.
// See https://api.stratz.com/graphiql for the schema.
const ConstantQuery = `
{
  constants {
    items(language: S_CHINESE) {
      id
      language {
        displayName
      }
    }
    heroes(language: S_CHINESE) {
      id
      language {
        displayName
      }
    }
  }
}
`

// ConstantResponse is the decode target for the constants query. machinebox's
// client unwraps the top-level "data" object, so the response starts at
// "constants". A missing displayName is legal and resolves to "Unknown"
// when the tables are split.
type ConstantResponse struct {
	Constants Constants `json:"constants"`
}

type Constants struct {
	Items  []ConstantEntry `json:"items"`
	Heroes []ConstantEntry `json:"heroes"`
}

type ConstantEntry struct {
	ID       int              `json:"id"`
	Language ConstantLanguage `json:"language"`
}

type ConstantLanguage struct {
	DisplayName *string `json:"displayName"`
}
