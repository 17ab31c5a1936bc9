package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"toolchainctl/pkg/cli"
	"toolchainctl/pkg/config"
	"toolchainctl/pkg/ctlerrors"
	"toolchainctl/pkg/formatter"
	"toolchainctl/pkg/notify"
)

// dryRunManager is shared by every mutating subcommand so --dry-run always
// goes through the same describe-then-skip path instead of each command
// rolling its own check.
var dryRunManager = cli.NewDryRunManager()

// commandContext builds the CommandContext a DryRunOperation runs under,
// carrying the cobra-assigned cancellation context (wired to SIGINT/SIGTERM
// by Execute in root.go) and the current --dry-run flag value.
func commandContext(cmd *cobra.Command) cli.CommandContext {
	return cli.CommandContext{
		Context:     cmd.Context(),
		Output:      os.Stdout,
		ErrorOutput: os.Stderr,
		DryRun:      flagDryRun,
	}
}

// canceled reports whether ctx was canceled, the way a mutating command
// checks before committing a transaction it has already staged.
func canceled(ctx cli.CommandContext) bool {
	if ctx.Context == nil {
		return false
	}
	select {
	case <-ctx.Context.Done():
		return true
	default:
		return false
	}
}

// consoleSink builds the notification sink used by every command: plain
// stdout printing, or, when --quiet is set, a sink that prints only warnings
// and rollback failures.
func consoleSink(settings *config.Settings) notify.Sink {
	if settings.Quiet {
		return notify.SinkFunc(func(n notify.Notification) {
			if n.Kind == notify.EventWarning || n.Kind == notify.EventRollbackFailed {
				fmt.Println(n.Detail)
			}
		})
	}
	return notify.NewConsoleSink(nil)
}

// bufferedConsoleSink builds a ConsoleSink that buffers its notifications
// instead of printing them immediately, so a mutating command can discard
// everything a rolled-back transaction emitted and only show output for a
// transaction that actually commits. Returns nil under --quiet, so callers
// fall back to consoleSink's quiet sink.
func bufferedConsoleSink(settings *config.Settings) *notify.ConsoleSink {
	if settings.Quiet {
		return nil
	}
	return notify.NewConsoleSink(formatter.NewOutputCollector())
}

func errAlreadyInstalled(name string) error {
	return ctlerrors.NewPreconditionViolated("install", fmt.Sprintf("component %q is already installed", name))
}

func errNotInstalled(name string) error {
	return ctlerrors.NewPreconditionViolated("uninstall", fmt.Sprintf("component %q is not installed", name))
}
