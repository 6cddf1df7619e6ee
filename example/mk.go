// This is an example pake build script that offers you a practical approach.
package main

import (
	"context"

	"github.com/twpayne/pake"
)

func main() {
	// The project in the current working dir
	prj := pake.NewProject("")

	// Start editing the project, recovering panics to errors
	err := pake.Edit(prj, func(prj pake.ProjectEd) {
		// "all" is declared first, so it becomes the default target
		prj.Virtual("all", "app")

		prj.Target("app",
			pake.Act("link app", func(ctx context.Context, t *pake.Target, env *pake.Env) error {
				return t.Run(ctx, env, "cc", "-o", t.Path(), t.Dependencies())
			}),
			"app.o",
		)

		// object files are synthesized from their C sources on demand
		prj.Rule(`(.*)\.o$`, func(name string, match []string) *pake.Target {
			src := match[1] + ".c"
			return pake.NewTarget(name,
				pake.Act("compile "+src, func(ctx context.Context, t *pake.Target, env *pake.Env) error {
					return t.Run(ctx, env, "cc", "-c", "-o", t.Path(), src)
				}),
				src,
			)
		})
	})
	pake.Must(err)

	pake.Main(prj)
}
