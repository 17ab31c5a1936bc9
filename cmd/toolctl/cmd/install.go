package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"toolchainctl/pkg/cli"
	"toolchainctl/pkg/notify"
	"toolchainctl/pkg/prefix"
	"toolchainctl/pkg/registry"
	"toolchainctl/pkg/txn"
)

// ⭐ CORE-011: install subcommand - 🔧 Stage source-dir tree as one component

func newInstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <component> <source-dir>",
		Short: "Install a component by copying a source directory tree into the prefix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, args[0], args[1])
		},
	}
	return cmd
}

func runInstall(cmd *cobra.Command, name, sourceDir string) error {
	settings, err := resolvedSettings()
	if err != nil {
		return err
	}

	p := prefix.New(settings.PrefixRoot)
	reg, err := registry.Open(p)
	if err != nil {
		return err
	}
	if _, ok, err := reg.Find(name); err != nil {
		return err
	} else if ok {
		return errAlreadyInstalled(name)
	}

	op := cli.NewSimpleDryRunOperation(
		fmt.Sprintf("install component %q from %s into %s", name, sourceDir, settings.PrefixRoot),
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
				builder := reg.Add(name, tx)
				if err := stageTree(builder, sourceDir); err != nil {
					return tx.RollbackFailingVerb(err)
				}
				if err := builder.Finish(); err != nil {
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

// stageTree walks sourceDir and stages every entry under the component's
// builder, preserving sourceDir's own subtree layout relative to the prefix
// root's top level (i.e. a source dir laid out like a prefix itself:
// bin/, lib/, share/, ...).
func stageTree(builder *registry.ComponentBuilder, sourceDir string) error {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		src := filepath.Join(sourceDir, entry.Name())
		rel := entry.Name()
		if entry.IsDir() {
			if err := builder.CopyDir(rel, src); err != nil {
				return err
			}
			continue
		}
		if err := builder.CopyFile(rel, src); err != nil {
			return err
		}
	}
	return nil
}
