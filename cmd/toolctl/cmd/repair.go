package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolchainctl/pkg/prefix"
	"toolchainctl/pkg/repair"
)

// ⭐ CORE-011: repair subcommand - 🔍 Watch metadata directory for out-of-band changes

func newRepairCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repair",
		Short: "Watch the prefix's metadata directory and report changes made by other processes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepair(cmd)
		},
	}
}

// runRepair starts the metadata watcher and blocks until the command's
// context is canceled (SIGINT/SIGTERM, wired in Execute), printing every
// out-of-band change it observes through the console sink.
func runRepair(cmd *cobra.Command) error {
	settings, err := resolvedSettings()
	if err != nil {
		return err
	}

	p := prefix.New(settings.PrefixRoot)
	sink := consoleSink(settings)
	watcher, err := repair.Watch(p, sink)
	if err != nil {
		return err
	}
	defer watcher.Close()

	fmt.Printf("watching %s for changes; press Ctrl-C to stop\n", p.AbsPath(p.MetadataRootRel()))
	<-cmd.Context().Done()
	return nil
}
