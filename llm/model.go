package llm

// Model is one usable language-model definition. Name is unique across the
// whole document; FullName qualifies it with the owning provider
// ("openai/gpt-4-default"). APIKey and BaseURL are inherited from the
// provider unless the model overrides them.
type Model struct {
	Name        string
	FullName    string
	Provider    string
	ID          string
	APIKey      string
	BaseURL     string
	Tags        []string
	Description string
}

// HasTag reports whether the model carries the given tag.
func (m Model) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (m Model) clone() Model {
	out := m
	if m.Tags != nil {
		out.Tags = make([]string, len(m.Tags))
		copy(out.Tags, m.Tags)
	}
	return out
}

// Provider groups the models sharing a default api_key and base_url.
type Provider struct {
	Name    string
	APIKey  string
	BaseURL string
	Models  []Model
}

// Summary is the listing view of a model. It omits credentials so listings
// can be logged or printed.
type Summary struct {
	FullName    string
	Provider    string
	ID          string
	Tags        []string
	Description string
}
