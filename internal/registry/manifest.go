// Package registry is the external registry collaborator from spec.md
// §4.4: (platform, command_key) -> template bytes, with platform-alias
// resolution, command-key normalization, and a small read-mostly
// compiled-template cache. It knows nothing about the DSL grammar itself
// — that lives in internal/textfsm.
package registry

import "encoding/json"

// Entry is one row of the embedded registry.json manifest.
type Entry struct {
	Platform   string `json:"platform"`
	CommandKey string `json:"commandKey"`
	Template   string `json:"template"`
	// Shape is preserved verbatim and never interpreted — spec.md §9's
	// open question leaves its meaning to the upstream template author.
	Shape string `json:"shape,omitempty"`
}

// manifest is the top-level registry.json shape.
type manifest struct {
	Templates []Entry `json:"templates"`
}

// parseManifest decodes a registry.json document.
func parseManifest(data []byte) ([]Entry, error) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, NewManifestInvalidError(err)
	}
	return m.Templates, nil
}

// key is the internal lookup key: canonical platform + canonical command.
type key struct {
	platform string
	command  string
}
