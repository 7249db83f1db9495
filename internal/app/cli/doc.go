// Package cli implements the interactive terminal front end: a small REPL
// over the session manager, the user directory and the two record stores.
// Commands map one to one onto the tabs of the legacy browser tool — shim
// measurements, report creation, report browsing — plus an admin surface
// for user management.
package cli
