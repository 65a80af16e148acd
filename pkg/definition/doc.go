// Package definition loads declarative multi-step form definitions from YAML
// or JSON and ships the default three-step registration form. Parsed
// definitions are checked for structural problems and their rules are
// compiled once so that broken expressions surface at load time rather than
// during a session.
package definition
