package app

import "github.com/nhle/trade-alerts/internal/keys"

// KeyMap is re-exported from the keys package so the root model and its
// tests can refer to app.KeyMap.
type KeyMap = keys.KeyMap

// DefaultKeyMap delegates to keys.DefaultKeyMap.
func DefaultKeyMap() *KeyMap {
	return keys.DefaultKeyMap()
}
