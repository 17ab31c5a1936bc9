package cli

import (
	"github.com/spf13/cobra"
)

// ⭐ EXTRACT-005: Cobra command patterns and flag handling extracted from main.go - 🔧

// DefaultFlagManager provides standard flag management functionality
type DefaultFlagManager struct{}

// NewFlagManager creates a new flag manager
func NewFlagManager() FlagManager {
	return &DefaultFlagManager{}
}

// AddGlobalFlags adds common global flags to a command
func (fm *DefaultFlagManager) AddGlobalFlags(cmd *cobra.Command) error {
	cmd.PersistentFlags().BoolP("help", "h", false, "Help for this command")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	return nil
}

// AddDryRunFlag adds dry-run flag with consistent naming
func (fm *DefaultFlagManager) AddDryRunFlag(cmd *cobra.Command, target *bool) error {
	cmd.PersistentFlags().BoolVarP(target, "dry-run", "d", false,
		"Show what would be done without executing")
	return nil
}

// AddNoteFlag adds note flag for operations
func (fm *DefaultFlagManager) AddNoteFlag(cmd *cobra.Command, target *string) error {
	cmd.Flags().StringVarP(target, "note", "n", "",
		"Optional note to include with the operation")
	return nil
}
