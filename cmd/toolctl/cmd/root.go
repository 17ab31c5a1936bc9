package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"toolchainctl/pkg/cli"
	"toolchainctl/pkg/config"
)

// ⭐ CORE-011: CLI root - 📝 Shared flags, config load, version info

var (
	flagPrefix string
	flagConfig string
	flagQuiet  bool
	flagDryRun bool

	appInfo = cli.AppInfo{
		Name:  "toolctl",
		Short: "Manage components of an installed toolchain",
		Long: "toolctl installs, removes, and lists the components of a toolchain\n" +
			"installed under a prefix, applying every mutation through a\n" +
			"reversible transaction so a failure midway leaves the prefix exactly\n" +
			"as it was found.",
		Build: cli.BuildInfo{Version: "0.1.0", Date: "unknown", Platform: "source"},
	}
)

func newRootCommand() *cobra.Command {
	flagMgr := cli.NewFlagManager()
	rootBuilder := cli.NewRootCommandBuilder(flagMgr, cli.NewVersionManager())
	root := rootBuilder.NewRootCommand(appInfo)
	root.SilenceUsage = true
	root.SilenceErrors = true
	rootBuilder.WithGlobalFlags(root, flagMgr)

	root.PersistentFlags().StringVar(&flagPrefix, "prefix", "", "install prefix (overrides config and $TOOLCTL_PREFIX_ROOT)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a TOML config file (bypasses discovery)")
	root.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "suppress informational notifications")
	flagMgr.AddDryRunFlag(root, &flagDryRun)

	root.AddCommand(newInstallCommand())
	root.AddCommand(newUninstallCommand())
	root.AddCommand(newListCommand())
	root.AddCommand(newRepairCommand())

	return root
}

// Execute runs the CLI under a context canceled on SIGINT/SIGTERM, so a
// mutating command midway through staging a transaction can notice the
// cancellation and roll back instead of committing.
func Execute() error {
	ctx, cancel := cli.WithSignalHandling(nil)
	defer cancel()
	return newRootCommand().ExecuteContext(ctx)
}

// resolvedSettings loads settings from the explicit --config file if one is
// given, or through discovery otherwise, then applies --prefix/--quiet flag
// overrides last so flags always win.
func resolvedSettings() (*config.Settings, error) {
	var settings *config.Settings
	var err error
	if flagConfig != "" {
		settings, err = config.LoadSettingsTOML(flagConfig)
	} else {
		settings, err = config.LoadSettings(viper.New(), []string{".", "~/.config/toolctl"})
	}
	if err != nil {
		return nil, err
	}
	if flagPrefix != "" {
		settings.PrefixRoot = flagPrefix
	}
	if flagQuiet {
		settings.Quiet = true
	}
	if settings.PrefixRoot == "" {
		return nil, fmt.Errorf("no install prefix: pass --prefix, set TOOLCTL_PREFIX_ROOT, or add prefix_root to a toolctl config file")
	}
	return settings, nil
}

// ExitCodeFor maps an error returned by the core packages to a process
// exit status, using the status code carried by any ApplicationError-based
// error and falling back to a generic failure code otherwise.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if statusCoder, ok := err.(interface{ GetStatusCode() int }); ok {
		return statusCoder.GetStatusCode()
	}
	return 1
}
