// Package pake helps to write incremental build scripts in Go. A build script
// declares named targets connected by dependency edges; running the script
// rebuilds only the targets whose artefacts are older than one of their
// dependencies. Undeclared target names can be synthesized on demand from
// regexp rules, the way classic make handles suffix rules.
//
// pake is just a Go library. A build script is a Go executable; "mk.go" is
// the recommended file name. The script declares its targets with [Edit] and
// hands control to [Main]:
//
//	func main() {
//		prj := pake.NewProject("")
//		pake.Must(pake.Edit(prj, func(p pake.ProjectEd) {
//			p.Virtual("all", "hello.txt")
//			p.Target("hello.txt", pake.Act("write greeting",
//				func(ctx context.Context, t *pake.Target, env *pake.Env) error {
//					return t.Output(ctx, env, "echo", "hello")
//				},
//			))
//		}))
//		pake.Main(prj)
//	}
//
// Build with
//
//	project$ go run mk.go
//
// The core model lives in [github.com/twpayne/pake/pakore]; declarative YAML
// build files are supported by [github.com/twpayne/pake/pakefile] and the
// cmd/pake binary.
package pake
