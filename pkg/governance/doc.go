// Package governance holds the collaborators surrounding the delegation
// engine: the eligible-signer registry and the proposal approval path
// that resolves effective voters before recording votes.
package governance
