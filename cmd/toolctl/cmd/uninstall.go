package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolchainctl/pkg/cli"
	"toolchainctl/pkg/notify"
	"toolchainctl/pkg/prefix"
	"toolchainctl/pkg/registry"
	"toolchainctl/pkg/txn"
)

// ⭐ CORE-011: uninstall subcommand - 🔧 Reverse-order part removal + prune

func newUninstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <component>",
		Short: "Remove a component and prune any directories it leaves empty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUninstall(cmd, args[0])
		},
	}
}

func runUninstall(cmd *cobra.Command, name string) error {
	settings, err := resolvedSettings()
	if err != nil {
		return err
	}

	p := prefix.New(settings.PrefixRoot)
	reg, err := registry.Open(p)
	if err != nil {
		return err
	}

	target, ok, err := reg.Find(name)
	if err != nil {
		return err
	}
	if !ok {
		return errNotInstalled(name)
	}

	op := cli.NewSimpleDryRunOperation(
		fmt.Sprintf("uninstall component %q from %s and prune directories it leaves empty", name, settings.PrefixRoot),
		func(ctx cli.CommandContext) error {
			buffered := bufferedConsoleSink(settings)
			sink := consoleSink(settings)
			if buffered != nil {
				sink = buffered
			}
			tx, err := txn.New(p, sink)
			if err != nil {
				return err
			}

			if err := func() error {
				if err := target.Uninstall(tx); err != nil {
					return tx.RollbackFailingVerb(err)
				}
				if canceled(ctx) {
					if err := tx.Rollback(); err != nil {
						return err
					}
					return ctx.Context.Err()
				}
				return tx.Commit()
			}(); err != nil {
				if buffered != nil {
					buffered.Discard()
				}
				return err
			}
			if buffered != nil {
				buffered.Flush()
			}
			return nil
		},
	)
	return dryRunManager.Execute(commandContext(cmd), op)
}
