package cli

import (
	"github.com/spf13/cobra"
)

// ⭐ EXTRACT-005: Command structure templates and builder patterns - 🔧

// DefaultRootCommandBuilder provides standard root command building functionality
type DefaultRootCommandBuilder struct {
	flagManager    FlagManager
	versionManager VersionManager
}

// NewRootCommandBuilder creates a new root command builder
func NewRootCommandBuilder(flagMgr FlagManager, versionMgr VersionManager) RootCommandBuilder {
	if flagMgr == nil {
		flagMgr = NewFlagManager()
	}
	if versionMgr == nil {
		versionMgr = NewVersionManager()
	}
	return &DefaultRootCommandBuilder{
		flagManager:    flagMgr,
		versionManager: versionMgr,
	}
}

// NewRootCommand creates the root command with application info
func (rb *DefaultRootCommandBuilder) NewRootCommand(info AppInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:     info.Name,
		Short:   info.Short,
		Long:    info.Long,
		Version: rb.versionManager.FormatVersion(info.Build),
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	cmd.SetVersionTemplate(rb.versionManager.CreateVersionTemplate(info.Build))

	return cmd
}

// WithVersionTemplate sets custom version template
func (rb *DefaultRootCommandBuilder) WithVersionTemplate(cmd *cobra.Command, template string) *cobra.Command {
	cmd.SetVersionTemplate(template)
	return cmd
}

// WithGlobalFlags adds global flags to root command
func (rb *DefaultRootCommandBuilder) WithGlobalFlags(cmd *cobra.Command, flagMgr FlagManager) *cobra.Command {
	if flagMgr != nil {
		flagMgr.AddGlobalFlags(cmd)
	} else {
		rb.flagManager.AddGlobalFlags(cmd)
	}
	return cmd
}

// WithExampleUsage adds example usage to root command
func (rb *DefaultRootCommandBuilder) WithExampleUsage(cmd *cobra.Command, examples string) *cobra.Command {
	cmd.Example = examples
	return cmd
}
