// Package version reports build information for the transduce binary.
//
// Version and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/transduce/version.Version=1.0.0"
//
// Commit and dirty state fall back to the VCS stamp Go embeds in the binary.
package version
