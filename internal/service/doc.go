// Package service provides the application-level operations of the
// challenge system: registering applicants, verifying submitted
// solutions, and deriving applicant status views. Services orchestrate
// the domain logic and the stores; they hold no state of their own
// between calls.
package service
