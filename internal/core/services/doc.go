// Package services implements the driving port interfaces.
// Services contain the core business logic: message parsing,
// validation, increment resolution and rendering.
//
// Services are pure Go with no external dependencies. All state is
// read-only after construction, so a service is safe to share across
// goroutines.
package services
