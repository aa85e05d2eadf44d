// Package logging defines the §6 logging-sink interface and a TextSink
// implementation of its exact wire schema, plus the CLI-only DumpManager
// that owns dump-directory file-system bookkeeping (never the core).
//
// The sink is an injected interface, matching §9's note that the original
// C++ singleton Logger becomes, in this rewrite, dependency-injected
// collaborator rather than a package-level global.
package logging
