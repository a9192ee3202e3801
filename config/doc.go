// Package config loads YAML configuration files and exposes typed access to
// their contents. A file is located by explicit path, by environment
// variable, or by probing a prioritized list of directories; after parsing,
// ${NAME} placeholders in string values are substituted with environment
// variable contents.
//
// Resolution priority (highest first):
//  1. Options.ExplicitPath
//  2. The path held by the environment variable named in Options.EnvVar
//     (CONFIG_PATH when unset)
//  3. Options.Filename joined to each entry of Options.SearchLocations
//  4. Options.Filename joined to DefaultSearchLocations()
//
// A missing file is not an error: Load returns an empty Config whose
// Filepath is "", so callers can degrade gracefully. Malformed YAML is an
// error, since it indicates a fixable authoring mistake.
package config
