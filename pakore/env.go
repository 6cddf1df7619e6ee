package pakore

import (
	"io"
	"log/slog"
	"os"
)

// Env carries the I/O streams, the logger and the variable table that builds
// and their actions run with. Spawned processes inherit In, Out and Err and
// receive their environment from Vars.
type Env struct {
	In       io.Reader
	Out, Err io.Writer
	Log      *slog.Logger
	Vars     *Vars
}

// DefaultEnv returns an Env on the process's standard streams with variables
// seeded from the process environment.
func DefaultEnv() *Env {
	return &Env{
		In:   os.Stdin,
		Out:  os.Stdout,
		Err:  os.Stderr,
		Log:  slog.Default(),
		Vars: OSVars(),
	}
}

func (e *Env) logger() *slog.Logger {
	if e == nil || e.Log == nil {
		return slog.Default()
	}
	return e.Log
}
