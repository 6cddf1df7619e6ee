// Command pake builds or cleans the targets declared in a Pakefile. It is the
// standalone counterpart to build scripts that link the pake package directly.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twpayne/pake"
	"github.com/twpayne/pake/pakefile"
)

func command() *cobra.Command {
	var (
		opts pake.Options
		file string
		dir  string
	)
	cmd := &cobra.Command{
		Use:           "pake [flags] [VAR=value ...] [target ...]",
		Short:         "Build or clean the targets declared in a Pakefile",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := pakefile.Load(file)
			if err != nil {
				return err
			}
			prj, err := f.Project(dir)
			if err != nil {
				return err
			}
			env := pake.NewEnv(opts.Verbose)
			for k, v := range f.Vars {
				env.Vars.Set(k, v)
			}
			return pake.Run(prj, env, opts, args)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "Pakefile.yaml", "Pakefile to load")
	f.StringVarP(&dir, "directory", "C", "", "resolve artefact paths relative to this directory")
	f.BoolVarP(&opts.Clean, "clean", "c", false, "remove target artefacts instead of building")
	f.BoolVarP(&opts.DryRun, "dry-run", "n", false, "report actions without running them")
	f.BoolVarP(&opts.Really, "really", "r", false, "clean artefacts even if declared no-clean")
	f.CountVarP(&opts.Verbose, "verbose", "v", "raise log verbosity")
	return cmd
}

func main() {
	os.Exit(pake.ExitCode(command().Execute()))
}
