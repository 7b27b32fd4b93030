// Package country holds the per-country mask descriptors an application
// supports.
//
// Descriptors are loaded from YAML and validated once; a broken entry fails
// the whole load instead of surfacing while a user is typing.
package country
