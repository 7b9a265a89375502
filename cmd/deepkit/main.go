// Package main implements the deepkit CLI and MCP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/deepkit/internal/filesystem"
	"github.com/taigrr/deepkit/internal/frontmatter"
	"github.com/taigrr/deepkit/internal/pathfilter"
	"github.com/taigrr/deepkit/internal/types"
)

var fileSystem *filesystem.Service

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	ignore   []string
	logLevel string
}

func (o *rootOptions) pathFilter() *pathfilter.PathFilter {
	return pathfilter.New(&types.PathFilterConfig{IgnoredPatterns: o.ignore})
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "deepkit [root]",
		Short: "Deep clone, deep merge and directory mapping for YAML/JSON documents",
		Long: `deepkit is a Model Context Protocol (MCP) server and command line tool
for working with structured documents. It deep-clones and deep-merges
YAML or JSON values with key order preserved, maps a directory tree into
a flat index of files with a given extension, and merges patches into
Markdown frontmatter. Without a subcommand it serves MCP over stdio,
confined to the given root directory.`,
		Example: `deepkit ~/project
deepkit map ./config --type yaml
deepkit merge base.yaml override.yaml --format json`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(opts.logLevel, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, args, opts)
		},
	}

	cmd.PersistentFlags().StringSliceVar(&opts.ignore, "ignore", nil, "extra glob patterns to hide from listings (repeatable)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(newMapCmd(opts), newMergeCmd())
	return cmd
}

func runServer(cmd *cobra.Command, args []string, opts *rootOptions) error {
	var rootPath string
	if len(args) > 0 {
		rootPath = args[0]
	} else {
		var err error
		rootPath, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	info, err := os.Stat(rootPath)
	if err != nil {
		return fmt.Errorf("failed to access root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root is not a directory: %s", rootPath)
	}

	// Initialize services
	fileSystem = filesystem.New(rootPath, opts.pathFilter(), frontmatter.New())

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "deepkit",
		Version: version,
	}, nil)

	registerTools(server)

	log.WithField("root", fileSystem.GetRootPath()).Info("serving MCP over stdio")
	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
