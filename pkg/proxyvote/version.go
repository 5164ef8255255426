// Package proxyvote carries module-wide metadata.
package proxyvote

// Version is the proxyvote release version.
const Version = "0.1.0"
