package model

// ResourceLink is a static navigation entry.
type ResourceLink struct {
	// Icon is a symbolic icon tag, resolved to a glyph by the renderer.
	Icon string `json:"icon"`

	// Label is the display text.
	Label string `json:"label"`

	// Target is an opaque path handed to the navigation collaborator.
	Target string `json:"target"`

	// External marks entries that open in a new context instead of
	// replacing the current one.
	External bool `json:"external"`
}
