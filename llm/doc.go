// Package llm builds a validated registry of language-model definitions
// from a loaded configuration document. The document's providers mapping
// groups models under a shared api_key and base_url, which individual
// models may override. Validation happens once, at construction: queries
// operate over the fully normalized set.
package llm
