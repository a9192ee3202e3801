package llm

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/eugenenazirov/confkit/config"
)

// Registry holds the validated, normalized model set derived from one
// configuration document. It is immutable after construction and safe for
// concurrent reads.
type Registry struct {
	models    []Model
	providers []Provider
	byName    map[string]int
	byFull    map[string]int
	source    string
}

// New builds a Registry from a loaded configuration. The document must
// contain a providers mapping.
func New(cfg *config.Config) (*Registry, error) {
	return NewFromDocument(cfg.Document(), cfg.Filepath())
}

// NewFromDocument builds a Registry from a raw document. Validation covers
// the whole document before failing, so a single pass reports every
// authoring mistake; on any failure no registry is returned.
//
// Providers are processed in sorted name order and models in document order
// within their provider. Queries that return "the first match" are defined
// over that order.
func NewFromDocument(doc map[string]any, source string) (*Registry, error) {
	raw, ok := doc["providers"]
	if !ok {
		return nil, fmt.Errorf("%w: missing providers section", ErrValidation)
	}
	section, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: providers must be a mapping, got %T", ErrValidation, raw)
	}

	names := make([]string, 0, len(section))
	for name := range section {
		names = append(names, name)
	}
	sort.Strings(names)

	reg := &Registry{
		byName: make(map[string]int),
		byFull: make(map[string]int),
		source: source,
	}
	// model short name -> owning provider, for duplicate reporting
	seen := make(map[string]string)
	var errs error

	for _, providerName := range names {
		provider, err := parseProvider(providerName, section[providerName])
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		for _, model := range provider.Models {
			if owner, dup := seen[model.Name]; dup {
				errs = multierr.Append(errs, fmt.Errorf(
					"%w: duplicate model name %q (providers %q and %q)",
					ErrValidation, model.Name, owner, providerName))
				continue
			}
			seen[model.Name] = providerName

			reg.byName[model.Name] = len(reg.models)
			reg.byFull[model.FullName] = len(reg.models)
			reg.models = append(reg.models, model)
		}
		reg.providers = append(reg.providers, provider)
	}

	if errs != nil {
		return nil, errs
	}
	return reg, nil
}

func parseProvider(name string, raw any) (Provider, error) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return Provider{}, fmt.Errorf("%w: provider %q must be a mapping, got %T", ErrValidation, name, raw)
	}

	var errs error
	apiKey, ok := stringField(entry, "api_key")
	if !ok {
		errs = multierr.Append(errs, fmt.Errorf("%w: provider %q: missing api_key", ErrValidation, name))
	}
	baseURL, ok := stringField(entry, "base_url")
	if !ok {
		errs = multierr.Append(errs, fmt.Errorf("%w: provider %q: missing base_url", ErrValidation, name))
	}
	baseURL = normalizeBaseURL(baseURL)

	rawModels, ok := entry["models"]
	if !ok {
		errs = multierr.Append(errs, fmt.Errorf("%w: provider %q: missing models", ErrValidation, name))
	}
	if errs != nil {
		return Provider{}, errs
	}

	list, ok := rawModels.([]any)
	if !ok {
		return Provider{}, fmt.Errorf("%w: provider %q: models must be a sequence, got %T", ErrValidation, name, rawModels)
	}

	provider := Provider{Name: name, APIKey: apiKey, BaseURL: baseURL}
	for i, rawModel := range list {
		model, err := parseModel(provider, i, rawModel)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		provider.Models = append(provider.Models, model)
	}
	if errs != nil {
		return Provider{}, errs
	}
	return provider, nil
}

func parseModel(provider Provider, index int, raw any) (Model, error) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return Model{}, fmt.Errorf("%w: provider %q: model %d must be a mapping, got %T",
			ErrValidation, provider.Name, index, raw)
	}

	var errs error
	name, ok := stringField(entry, "name")
	if !ok || name == "" {
		errs = multierr.Append(errs, fmt.Errorf(
			"%w: provider %q: model %d: missing or empty name", ErrValidation, provider.Name, index))
	}
	id, ok := stringField(entry, "model")
	if !ok || id == "" {
		errs = multierr.Append(errs, fmt.Errorf(
			"%w: provider %q: model %d: missing or empty model identifier", ErrValidation, provider.Name, index))
	}
	if errs != nil {
		return Model{}, errs
	}

	model := Model{
		Name:     name,
		FullName: provider.Name + "/" + name,
		Provider: provider.Name,
		ID:       id,
		APIKey:   provider.APIKey,
		BaseURL:  provider.BaseURL,
		Tags:     normalizeTags(entry["tags"]),
	}
	if apiKey, ok := stringField(entry, "api_key"); ok && apiKey != "" {
		model.APIKey = apiKey
	}
	if baseURL, ok := stringField(entry, "base_url"); ok && baseURL != "" {
		model.BaseURL = normalizeBaseURL(baseURL)
	}
	if description, ok := stringField(entry, "description"); ok {
		model.Description = description
	}
	return model, nil
}

// stringField fetches a trimmed string value from a mapping. The second
// result is false when the key is absent or the value is not a string.
func stringField(entry map[string]any, key string) (string, bool) {
	raw, ok := entry[key]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// normalizeBaseURL trims whitespace and strips trailing slashes.
func normalizeBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

// normalizeTags turns a raw tags value into a deduplicated, trimmed,
// order-preserving slice. Non-string entries and empties are dropped; a
// missing or malformed tags value yields nil.
func normalizeTags(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	seen := make(map[string]struct{}, len(list))
	var tags []string
	for _, entry := range list {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		tags = append(tags, s)
	}
	return tags
}

// Get returns the model with the given name, accepting either the short
// name or the provider-qualified full name.
func (r *Registry) Get(name string) (Model, bool) {
	if i, ok := r.byName[name]; ok {
		return r.models[i].clone(), true
	}
	if i, ok := r.byFull[name]; ok {
		return r.models[i].clone(), true
	}
	return Model{}, false
}

// GetModel returns the model with the given API identifier under the given
// provider.
func (r *Registry) GetModel(id, provider string) (Model, bool) {
	for _, m := range r.models {
		if m.ID == id && m.Provider == provider {
			return m.clone(), true
		}
	}
	return Model{}, false
}

// GetByTag returns the first model carrying the given tag.
func (r *Registry) GetByTag(tag string) (Model, bool) {
	for _, m := range r.models {
		if m.HasTag(tag) {
			return m.clone(), true
		}
	}
	return Model{}, false
}

// GetAllByTag returns every model carrying the given tag, in registry order.
func (r *Registry) GetAllByTag(tag string) []Model {
	var out []Model
	for _, m := range r.models {
		if m.HasTag(tag) {
			out = append(out, m.clone())
		}
	}
	return out
}

// GetByProvider returns every model owned by the given provider, in
// document order.
func (r *Registry) GetByProvider(provider string) []Model {
	var out []Model
	for _, m := range r.models {
		if m.Provider == provider {
			out = append(out, m.clone())
		}
	}
	return out
}

// Providers returns the validated provider entries in sorted name order.
func (r *Registry) Providers() []Provider {
	out := make([]Provider, len(r.providers))
	for i, p := range r.providers {
		cp := p
		cp.Models = make([]Model, len(p.Models))
		for j, m := range p.Models {
			cp.Models[j] = m.clone()
		}
		out[i] = cp
	}
	return out
}

// List returns credential-free summaries of every model, in registry order.
func (r *Registry) List() []Summary {
	out := make([]Summary, len(r.models))
	for i, m := range r.models {
		c := m.clone()
		out[i] = Summary{
			FullName:    c.FullName,
			Provider:    c.Provider,
			ID:          c.ID,
			Tags:        c.Tags,
			Description: c.Description,
		}
	}
	return out
}

// Len returns the number of models in the registry.
func (r *Registry) Len() int {
	return len(r.models)
}

// Source returns the path of the file the registry's document came from, or
// "" when the document was built in memory.
func (r *Registry) Source() string {
	return r.source
}
