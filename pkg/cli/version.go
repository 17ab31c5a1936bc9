package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ⭐ EXTRACT-005: Version and build info handling extracted from main.go - 🔧

// DefaultVersionManager provides standard version handling functionality
type DefaultVersionManager struct{}

// NewVersionManager creates a new version manager
func NewVersionManager() VersionManager {
	return &DefaultVersionManager{}
}

// FormatVersion formats version information for display
func (vm *DefaultVersionManager) FormatVersion(info BuildInfo) string {
	return fmt.Sprintf("%s (compiled %s) [%s]", info.Version, info.Date, info.Platform)
}

// CreateVersionCommand creates a version subcommand
func (vm *DefaultVersionManager) CreateVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information including build date and platform.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(vm.FormatVersion(info))
		},
	}
}

// CreateVersionTemplate creates a version template string for root command
func (vm *DefaultVersionManager) CreateVersionTemplate(info BuildInfo) string {
	return fmt.Sprintf("version %s (compiled %s) [%s]\n",
		info.Version, info.Date, info.Platform)
}
