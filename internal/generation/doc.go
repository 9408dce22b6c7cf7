// Package generation provides the challenge string generator. The
// generator is an explicit dependency of the registration service rather
// than an implicit global random source, so tests can substitute a
// deterministic seed.
package generation
