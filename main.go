package pake

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/twpayne/pake/pakore"
)

// Options configure one driver run.
type Options struct {
	Clean   bool // remove artefacts instead of building
	DryRun  bool // report actions without running them
	Really  bool // force-clean artefacts declared no-clean
	Verbose int  // number of -v occurrences, raises log verbosity
}

var assignmentRx = regexp.MustCompile(`^(\w+)=(.*)$`)

// NewEnv returns a driver environment logging through [Handler]. Each step of
// verbose raises the log verbosity by one slog level below Info.
func NewEnv(verbose int) *Env {
	env := DefaultEnv()
	level := slog.LevelInfo - slog.Level(4*verbose)
	env.Log = slog.New(NewHandler(os.Stderr, level))
	return env
}

// Run executes the driver loop: arguments of the form key=value are folded
// into the environment's variable table, first write wins, with a warning for
// keys the table does not know yet. All remaining arguments are target names;
// with none, the project's default target is used. Each target is then
// cleaned or built according to opts.
func Run(prj *Project, env *Env, opts Options, args []string) error {
	if env == nil {
		env = NewEnv(opts.Verbose)
	}
	var names []string
	for _, arg := range args {
		if m := assignmentRx.FindStringSubmatch(arg); m != nil {
			if !env.Vars.Has(m[1]) {
				env.Log.Warn("`key` is not a variable", `key`, m[1])
			}
			env.Log.Debug("assign `key` `value`", `key`, m[1], `value`, m[2])
			env.Vars.Set(m[1], m[2])
			continue
		}
		names = append(names, arg)
	}
	if len(names) == 0 {
		def := prj.Default()
		if def == nil {
			return errors.New("no targets given and no default target declared")
		}
		names = []string{def.Name()}
	}

	run := uuid.New()
	start := time.Now()
	env.Log.Debug("`run` starts for `targets`",
		`run`, run, `targets`, strings.Join(names, " "))
	cl := pakore.Cleaner{Env: env, Really: opts.Really, DryRun: opts.DryRun}
	for _, name := range names {
		t, err := prj.Get(name)
		if err != nil {
			return err
		}
		if opts.Clean {
			err = cl.Target(t)
		} else {
			_, err = t.Build(env, opts.DryRun)
		}
		if err != nil {
			return err
		}
	}
	env.Log.Debug("`run` took `duration`", `run`, run, `duration`, time.Since(start))
	return nil
}

// Command wires the driver options for prj to a cobra command. Build scripts
// normally call [Main] instead.
func Command(prj *Project) *cobra.Command {
	var opts Options
	cmd := &cobra.Command{
		Use:           "pake [flags] [VAR=value ...] [target ...]",
		Short:         "Build or clean the project's targets",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return Run(prj, nil, opts, args)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&opts.Clean, "clean", "c", false, "remove target artefacts instead of building")
	f.BoolVarP(&opts.DryRun, "dry-run", "n", false, "report actions without running them")
	f.BoolVarP(&opts.Really, "really", "r", false, "clean artefacts even if declared no-clean")
	f.CountVarP(&opts.Verbose, "verbose", "v", "raise log verbosity")
	return cmd
}

// Main runs the driver for prj on the process arguments and does not return.
// A build error exits with status 1, any other error with status 2.
func Main(prj *Project) {
	os.Exit(execute(Command(prj)))
}

func execute(cmd *cobra.Command) int {
	return ExitCode(cmd.Execute())
}

// ExitCode maps err to the driver's exit status: 0 when nil, 1 for build
// errors, 2 for anything else. Non-nil errors are reported on stderr, build
// errors in red.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var be *pakore.BuildError
	if errors.As(err, &be) {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Fprintln(os.Stderr, err)
	return 2
}
