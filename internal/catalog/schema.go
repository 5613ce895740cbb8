package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

var stringList = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items":    map[string]any{"type": "string", "minLength": 1},
}

// setupsSchema describes setups.yaml.
var setupsSchema = map[string]any{
	"type":     "object",
	"required": []any{"setups"},
	"properties": map[string]any{
		"setups": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"required": []any{
					"id", "name", "win_rate", "avg_return", "timeframe", "difficulty", "bias",
					"description", "how_to_spot", "entry_rules", "exit_rules", "best_time", "risk_reward", "pattern",
				},
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "pattern": "^[a-z0-9]+(-[a-z0-9]+)*$"},
					"name":        map[string]any{"type": "string", "minLength": 1},
					"win_rate":    map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
					"avg_return":  map[string]any{"type": "string"},
					"timeframe":   map[string]any{"type": "string"},
					"difficulty":  map[string]any{"enum": []any{"Easy", "Medium", "Advanced"}},
					"bias":        map[string]any{"enum": []any{"Bullish", "Bearish", "Neutral"}},
					"description": map[string]any{"type": "string"},
					"how_to_spot": stringList,
					"entry_rules": stringList,
					"exit_rules":  stringList,
					"best_time":   map[string]any{"type": "string"},
					"risk_reward": map[string]any{"type": "string"},
					"pattern":     map[string]any{"type": "string", "minLength": 1},
				},
			},
		},
	},
}

// lessonsSchema describes lessons.yaml.
var lessonsSchema = map[string]any{
	"type":     "object",
	"required": []any{"lessons"},
	"properties": map[string]any{
		"lessons": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "title", "duration", "content"},
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "minLength": 1},
					"title":    map[string]any{"type": "string", "minLength": 1},
					"duration": map[string]any{"type": "string"},
					"icon":     map[string]any{"type": "string"},
					"content":  stringList,
					"tips":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compileErr  error
)

func schemas() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled = make(map[string]*jsonschema.Schema)
		for name, def := range map[string]map[string]any{
			setupsFile:  setupsSchema,
			lessonsFile: lessonsSchema,
		} {
			s, err := compileSchema(name, def)
			if err != nil {
				compileErr = err
				return
			}
			compiled[name] = s
		}
	})
	return compiled, compileErr
}

func compileSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	// The compiler wants plain JSON values; round-trip to drop Go types.
	b, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", name, err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, parsed); err != nil {
		return nil, fmt.Errorf("add resource %s: %w", name, err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return s, nil
}

// validateDocument checks raw YAML against the schema registered for file.
func validateDocument(file string, raw []byte) error {
	all, err := schemas()
	if err != nil {
		return err
	}
	s, ok := all[file]
	if !ok {
		return fmt.Errorf("no schema for %s", file)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	// YAML ints and maps become JSON numbers and objects.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert yaml: %w", err)
	}
	var inst any
	if err := json.Unmarshal(b, &inst); err != nil {
		return fmt.Errorf("convert yaml: %w", err)
	}
	return s.Validate(inst)
}
