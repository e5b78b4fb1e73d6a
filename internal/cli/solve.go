package cli

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bartolsthoorn/goscip/scip"
)

type solveOptions struct {
	params    string
	timeLimit time.Duration
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve <problem-file>",
		Short: "Solve a problem file",
		Long: `Read a problem in any format SCIP has a reader for, solve it and report
the status, objective value, search statistics and the non-zero values of
the best solution.

Parameters from --params are applied before --time-limit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, rootOpts, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.params, "params", "", "YAML parameter file")
	cmd.Flags().DurationVar(&opts.timeLimit, "time-limit", 0, "solving time limit, 0 for none")

	return cmd
}

func runSolve(cmd *cobra.Command, rootOpts *RootOptions, opts *solveOptions, path string) error {
	log := NewLogger(rootOpts.logConfig(), cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	var params *scip.ParamSet
	if opts.params != "" {
		var err error
		if params, err = scip.LoadParams(opts.params); err != nil {
			return WrapExitError(ExitCommandError, "loading parameters", err)
		}
	}

	unsolved, err := scip.TryNew(scip.WithDriver(rootOpts.Driver), scip.WithLogger(log))
	if err != nil {
		return WrapExitError(ExitCommandError, "starting SCIP", err)
	}
	defer unsolved.Close()

	if !rootOpts.Verbose {
		unsolved.HideOutput()
	}
	if _, err := unsolved.ApplyParams(params); err != nil {
		return WrapExitError(ExitCommandError, "applying parameters", err)
	}
	if opts.timeLimit > 0 {
		unsolved.SetTimeLimit(opts.timeLimit)
	}

	plugins, err := unsolved.TryIncludeDefaultPlugins()
	if err != nil {
		return WrapExitError(ExitFailure, "including default plugins", err)
	}
	defer plugins.Close()

	problem, err := plugins.ReadProb(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "reading problem", err)
	}
	defer problem.Close()

	log.Debug("solving", zap.String("problem", path), zap.Int("vars", problem.NVars()), zap.Int("conss", problem.NConss()))
	solved, err := problem.TrySolve()
	if err != nil {
		return WrapExitError(ExitFailure, "solving", err)
	}
	defer solved.Close()

	log.Info("solved", zap.String("problem", path), zap.Stringer("status", solved.Status()))
	return NewReport(filepath.Base(path), solved).Write(cmd.OutOrStdout(), rootOpts.Format)
}
