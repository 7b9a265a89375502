package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/taigrr/deepkit/dirmap"
	"github.com/taigrr/deepkit/extend"
	"github.com/taigrr/deepkit/value"
)

func newMapCmd(opts *rootOptions) *cobra.Command {
	var fileType, formatName string

	cmd := &cobra.Command{
		Use:   "map <dir>",
		Short: "Index every file with an extension below a directory",
		Long: `map walks a directory breadth first and prints a mapping from each
matching file's relative path to its full path and base name.`,
		Example: `deepkit map ./config --type yaml
deepkit map . --type .md --format json --ignore 'drafts/**'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := value.ParseFormat(formatName)
			if err != nil {
				return err
			}

			result, err := dirmap.Map(dirmap.Options{Path: args[0], Type: fileType})
			if err != nil {
				return err
			}

			pf := opts.pathFilter()
			entries := value.NewMap()
			for _, key := range result.Keys {
				if !pf.IsAllowed(filepath.ToSlash(key)) {
					continue
				}
				entry := result.Entries[key]
				entries.Set(key, value.NewMap().
					Set("path", value.String(entry.Path)).
					Set("base", value.String(entry.Base)))
			}

			log.WithFields(logrus.Fields{
				"root":    result.Root,
				"type":    fileType,
				"matched": result.Len(),
				"listed":  entries.Len(),
			}).Debug("mapped directory")

			doc := value.NewMap().
				Set("root", value.String(result.Root)).
				Set("entries", entries)
			return writeValue(cmd, doc, format, "")
		},
	}

	cmd.Flags().StringVarP(&fileType, "type", "t", "", "file extension to index, with or without the leading dot")
	cmd.Flags().StringVarP(&formatName, "format", "f", "yaml", "output format (yaml or json)")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newMergeCmd() *cobra.Command {
	var formatName, output string

	cmd := &cobra.Command{
		Use:   "merge <file>...",
		Short: "Deep-merge YAML/JSON documents, later files winning",
		Long: `merge reads each document and folds it into the previous result.
Nested mappings merge key by key; lists and scalars from later files
replace earlier values.`,
		Example: `deepkit merge base.yaml prod.yaml
deepkit merge defaults.json local.json --format json -o merged.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := value.ParseFormat(formatName)
			if err != nil {
				return err
			}

			docs := make([]value.Value, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				v, err := value.Parse(data)
				if err != nil {
					return fmt.Errorf("failed to parse %s: %w", path, err)
				}
				docs = append(docs, v)
			}

			merged := extend.All(true, docs...)
			log.WithField("files", len(args)).Debug("merged documents")
			return writeValue(cmd, merged, format, output)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "yaml", "output format (yaml or json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to this file instead of stdout")
	return cmd
}

func writeValue(cmd *cobra.Command, v value.Value, format value.Format, path string) error {
	data, err := value.Marshal(v, format)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if path == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
