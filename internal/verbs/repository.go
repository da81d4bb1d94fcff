package verbs

import (
	"encoding/json"
	"fmt"
	"os"
)

// Repository serves the verb dataset loaded from a JSON file.
type Repository struct {
	verbs []Verb
}

// NewRepository reads and decodes the dataset file at path.
func NewRepository(path string) (*Repository, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	var all []Verb
	if err := json.Unmarshal(contents, &all); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(verb dataset) > %w", err)
	}
	return &Repository{verbs: all}, nil
}

// List returns every verb in the dataset.
func (r *Repository) List() []Verb {
	return r.verbs
}

// Find returns the verb with the given infinitive.
func (r *Repository) Find(infinitive string) (Verb, bool) {
	for _, v := range r.verbs {
		if v.Infinitive == infinitive {
			return v, true
		}
	}
	return Verb{}, false
}
