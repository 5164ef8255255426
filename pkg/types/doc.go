// Package types defines the Store and Emitter interfaces, entity types,
// and standard errors for the proxyvote delegation engine.
package types
