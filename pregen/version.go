/*
Package pregen contains values which are generated prior to the build process, such as
the release version.
*/
package pregen

const (
	// Version is auto-generated from ChangeLog.md
	Version = "v0.3.0"
	// ReleaseDate is also auto-generated from ChangeLog.md
	ReleaseDate = "2026-10-12"
)
