package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolchainctl/pkg/prefix"
	"toolchainctl/pkg/registry"
)

// ⭐ CORE-011: list subcommand - 🔍 Installed components

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the components installed in a prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	settings, err := resolvedSettings()
	if err != nil {
		return err
	}

	p := prefix.New(settings.PrefixRoot)
	reg, err := registry.Open(p)
	if err != nil {
		return err
	}

	components, err := reg.List()
	if err != nil {
		return err
	}
	if len(components) == 0 {
		fmt.Println("no components installed")
		return nil
	}
	for _, c := range components {
		fmt.Println(c.Name)
	}
	return nil
}
