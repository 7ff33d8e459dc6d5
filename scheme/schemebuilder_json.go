package scheme

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/quickwritereader/bytebuffer/types"
)

// SchemeJSON is one entry of a JSON layout document:
//
//	[{"name":"ids","type":"int32","shape":"jagged"},
//	 {"name":"tag","type":"string"}]
type SchemeJSON struct {
	Name  string `json:"name,omitempty"`
	Type  string `json:"type"`
	Shape string `json:"shape,omitempty"`
	// Count pins the outermost count when set.
	Count *int `json:"count,omitempty"`
}

// Registry of custom scheme builders.
// Key: type name (case-sensitive), Value: builder function.
var customSchemeBuilders = map[string]func(SchemeJSON) (Scheme, error){}

// RegisterSchemeType registers a custom Scheme builder for a type name that
// is not one of the built-in kinds. It panics on an empty or taken name.
func RegisterSchemeType(typeName string, builder func(SchemeJSON) (Scheme, error)) {
	if typeName == "" {
		panic("cannot register empty type name")
	}
	if _, err := types.ParseKind(typeName); err == nil {
		panic("scheme type already registered: " + typeName)
	}
	if _, exists := customSchemeBuilders[typeName]; exists {
		panic("scheme type already registered: " + typeName)
	}
	customSchemeBuilders[typeName] = builder
}

// UnregisterSchemeType removes a custom builder. Unknown names are ignored.
func UnregisterSchemeType(typeName string) {
	delete(customSchemeBuilders, typeName)
}

// BuildScheme turns one SchemeJSON entry into a Scheme. Built-in type names
// are the kind names: bool, int8, uint8 ... float64, string.
func BuildScheme(js SchemeJSON) (Scheme, error) {
	if builder, ok := customSchemeBuilders[js.Type]; ok {
		return builder(js)
	}
	kind, err := types.ParseKind(js.Type)
	if err != nil {
		return nil, err
	}
	shape, err := ParseShape(js.Shape)
	if err != nil {
		return nil, err
	}
	s := SchemeValue{Kind: kind, Shape: shape, Count: -1}
	if js.Count != nil {
		if shape == ShapeScalar {
			return nil, fmt.Errorf("count is only valid for array and jagged shapes")
		}
		if *js.Count < 0 {
			return nil, fmt.Errorf("negative count %d", *js.Count)
		}
		s.Count = *js.Count
	}
	return s, nil
}

// BuildChain builds a named chain. Entries without a name get "fieldN".
func BuildChain(entries []SchemeJSON) (SchemeNamedChain, error) {
	chain := SchemeNamedChain{
		SchemeChain: SchemeChain{Schemes: make([]Scheme, 0, len(entries))},
		FieldNames:  make([]string, 0, len(entries)),
	}
	for i, js := range entries {
		s, err := BuildScheme(js)
		if err != nil {
			return SchemeNamedChain{}, fmt.Errorf("BuildChain: entry %d: %w", i, err)
		}
		name := js.Name
		if name == "" {
			name = fmt.Sprintf("field%d", i)
		}
		chain.Schemes = append(chain.Schemes, s)
		chain.FieldNames = append(chain.FieldNames, name)
	}
	return chain, nil
}

// ParseChain reads a JSON array of SchemeJSON entries.
func ParseChain(data []byte) (SchemeNamedChain, error) {
	var entries []SchemeJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		return SchemeNamedChain{}, fmt.Errorf("ParseChain: %w", err)
	}
	return BuildChain(entries)
}
