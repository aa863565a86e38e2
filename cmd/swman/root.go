// Package swman is the swman command line interface.
package swman

import (
	"context"

	"github.com/arthur-debert/swman/internal/version"
	"github.com/arthur-debert/swman/pkg/errors"
	"github.com/arthur-debert/swman/pkg/types"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command with production dependencies
func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(Deps{}.withDefaults())
}

// NewRootCmdWith creates the root command over deps
func NewRootCmdWith(deps Deps) *cobra.Command {
	initTemplateFormatting()

	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:     "swman",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := a.deps.SetupLogger(a.verbosity)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logger.WithContext(ctx))
			logger.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetOut(deps.Stdout)
	rootCmd.SetErr(deps.Stderr)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, MsgFlagJSON)
	rootCmd.MarkFlagsMutuallyExclusive("json", "format")

	// Operations
	flags := rootCmd.Flags()
	flags.BoolVar(&a.check, "check", false, MsgFlagCheck)
	flags.BoolVar(&a.system, "system", false, MsgFlagSystem)
	flags.BoolVar(&a.tools, "tools", false, MsgFlagTools)
	flags.BoolVar(&a.plugins, "plugins", false, MsgFlagPlugins)
	flags.BoolVar(&a.all, "all", false, MsgFlagAll)
	flags.BoolVar(&a.dryRun, "dry-run", false, MsgFlagDryRun)

	for _, update := range []string{"system", "tools", "plugins", "all", "dry-run"} {
		rootCmd.MarkFlagsMutuallyExclusive("check", update)
	}
	for _, kind := range []string{"system", "tools", "plugins"} {
		rootCmd.MarkFlagsMutuallyExclusive("all", kind)
	}

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// selectedKinds maps the kind flags to manager kinds
func (a *app) selectedKinds() []types.Kind {
	var kinds []types.Kind
	if a.system {
		kinds = append(kinds, types.KindSystem)
	}
	if a.tools {
		kinds = append(kinds, types.KindTool)
	}
	if a.plugins {
		kinds = append(kinds, types.KindPlugin)
	}
	return kinds
}

func (a *app) run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	kinds := a.selectedKinds()
	if !a.check && !a.all && len(kinds) == 0 {
		_ = cmd.Help()
		return errors.New(errors.ErrUsage, MsgErrNoOperation)
	}

	renderer, err := a.renderer()
	if err != nil {
		return err
	}
	orch, err := a.orchestrator()
	if err != nil {
		return err
	}

	if a.check {
		results, err := orch.CheckAll(ctx)
		if err != nil {
			return err
		}
		return renderer.RenderCheck(results)
	}

	var results []types.UpdateResult
	if a.all {
		results, err = orch.UpdateAll(ctx, a.dryRun)
	} else {
		results, err = orch.UpdateByKinds(ctx, a.dryRun, kinds...)
	}
	if err != nil {
		return err
	}
	if err := renderer.RenderUpdates(results, a.dryRun); err != nil {
		return err
	}

	if summary := types.Summarize(results); summary.HasFailures() {
		return errors.Newf(errors.ErrUpdatesFailed, MsgErrUpdatesFailed, summary.Failed, summary.Total)
	}
	return nil
}
