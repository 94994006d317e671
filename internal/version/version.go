// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - High-accuracy ephemeris tables with disk cache and soft fallback
// 0.3.0 - Rich and custom CSV catalogs, catalog file watching, city lookup
// 0.2.0 - Rise/set solver, conjunction and eclipse-window detection
// 0.1.0 - Initial release: sky chart TUI, snapshot JSON export
