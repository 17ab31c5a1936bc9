package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ⭐ EXTRACT-005: CLI framework usage example - 📝

// Example shows how to assemble a root command from the flag, version, and
// dry-run managers.
func Example() {
	appInfo := AppInfo{
		Name:  "myapp",
		Short: "My CLI application",
		Long:  "A comprehensive CLI application built with the extracted framework",
		Build: BuildInfo{
			Version:  "1.0.0",
			Date:     "2024-01-01",
			Commit:   "abc123",
			Platform: "linux/amd64",
		},
	}

	flagMgr := NewFlagManager()
	rootBuilder := NewRootCommandBuilder(flagMgr, NewVersionManager())
	root := rootBuilder.NewRootCommand(appInfo)
	rootBuilder.WithGlobalFlags(root, flagMgr)

	var dryRun bool
	var note string

	helloCmd := &cobra.Command{
		Use:   "hello",
		Short: "Say hello",
		Long:  "Say hello to demonstrate the CLI framework",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := CommandContext{
				Context:     cmd.Context(),
				Output:      os.Stdout,
				ErrorOutput: os.Stderr,
				DryRun:      dryRun,
			}

			dryRunMgr := NewDryRunManager()
			op := NewSimpleDryRunOperation("Say hello with note: "+note, func(ctx CommandContext) error {
				fmt.Fprintf(ctx.Output, "Hello! Note: %s\n", note)
				return nil
			})

			return dryRunMgr.Execute(ctx, op)
		},
	}

	flagMgr.AddDryRunFlag(helloCmd, &dryRun)
	flagMgr.AddNoteFlag(helloCmd, &note)
	root.AddCommand(helloCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// ExampleCancellableOperation shows how to use cancellable operations
func ExampleCancellableOperation() {
	contextMgr := NewContextManager()

	ctx, cancel := contextMgr.Create(context.Background())
	defer cancel()

	op := NewCancellableOperation(func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			fmt.Println("Operation completed successfully")
			return nil
		}
	})

	if err := op.Execute(ctx); err != nil {
		fmt.Printf("Operation error: %v\n", err)
	}
}

// Example_versionHandling shows how to use version management
func Example_versionHandling() {
	versionMgr := NewVersionManager()

	buildInfo := BuildInfo{
		Version:  "2.1.0",
		Date:     "2024-01-15",
		Commit:   "def456",
		Platform: "darwin/amd64",
	}

	version := versionMgr.FormatVersion(buildInfo)
	fmt.Printf("Formatted version: %s\n", version)

	versionCmd := versionMgr.CreateVersionCommand(buildInfo)
	fmt.Printf("Version command: %s\n", versionCmd.Use)

	template := versionMgr.CreateVersionTemplate(buildInfo)
	fmt.Printf("Version template: %s", template)
}
