// Package settings manages the user's trip settings and their persistence.
//
// Settings record which transport modes are enabled and the route/line
// labels the user typed for bus and subway. They are saved wholesale as a
// single JSON entry (travelSettings.json) under the detour data root and
// read back before every planning attempt.
//
// Key concepts:
//   - Settings: enabled modes plus bus routes and subway lines
//   - Store: load/save/delete interface injected into the engine
//   - FileStore: Store backed by an atomically written JSON file
//   - ErrNotConfigured: returned by Load when nothing has been saved yet
package settings
