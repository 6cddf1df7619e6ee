// Package pakore implements the core model of pake: a minimal incremental
// build engine. A [Project] registers named build targets connected by
// dependency edges; [Target.BuildContext] recomputes staleness from artefact
// modification times and runs only the actions needed to bring the requested
// targets up to date, while [Cleaner] removes artefacts recursively. Targets
// for undeclared names can be synthesized on demand from regexp rules, see
// [Project.Rule].
//
// The package uses idiomatic Go error handling, which can make writing build
// scripts a bit cumbersome. An easy-to-use wrapper for everyday use in build
// scripts is provided by the [pake] package.
//
// [pake]: https://pkg.go.dev/github.com/twpayne/pake
package pakore
