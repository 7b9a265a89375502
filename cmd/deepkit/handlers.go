package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/taigrr/deepkit/clone"
	"github.com/taigrr/deepkit/extend"
	"github.com/taigrr/deepkit/internal/types"
	"github.com/taigrr/deepkit/value"
)

func handleClone(ctx context.Context, req *mcp.CallToolRequest, input CloneInput) (*mcp.CallToolResult, CloneOutput, error) {
	format, err := value.ParseFormat(input.Format)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CloneOutput{}, err
	}

	doc, err := value.Parse([]byte(input.Document))
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CloneOutput{}, err
	}

	out := clone.Clone(doc)
	encoded, err := value.Marshal(out, format)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CloneOutput{}, err
	}

	log.WithField("kind", value.KindOf(out).String()).Debug("clone")
	return nil, CloneOutput{Result: string(encoded), Kind: value.KindOf(out).String()}, nil
}

func handleExtend(ctx context.Context, req *mcp.CallToolRequest, input ExtendInput) (*mcp.CallToolResult, ExtendOutput, error) {
	format, err := value.ParseFormat(input.Format)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ExtendOutput{}, err
	}

	target, err := value.Parse([]byte(input.Target))
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ExtendOutput{}, fmt.Errorf("target: %w", err)
	}
	source, err := value.Parse([]byte(input.Source))
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ExtendOutput{}, fmt.Errorf("source: %w", err)
	}

	merged := extend.Extend(target, source, input.InPlace)

	encoded, err := value.Marshal(merged, format)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ExtendOutput{}, err
	}

	output := ExtendOutput{Result: string(encoded)}
	if path := strings.TrimSpace(input.OutputPath); path != "" {
		if err := fileSystem.WriteDocument(path, merged); err != nil {
			return &mcp.CallToolResult{IsError: true}, output, err
		}
		output.Written = path
	}

	log.WithFields(logrus.Fields{
		"target":  value.KindOf(target).String(),
		"source":  value.KindOf(source).String(),
		"inPlace": input.InPlace,
		"written": output.Written,
	}).Debug("extend")
	return nil, output, nil
}

func handleMapDirectory(ctx context.Context, req *mcp.CallToolRequest, input MapInput) (*mcp.CallToolResult, MapOutput, error) {
	path := strings.TrimSpace(input.Path)

	listing, err := fileSystem.MapDirectory(types.DirectoryMapParams{
		Path: path,
		Type: strings.TrimSpace(input.Type),
	})
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("map_directory failed")
		return &mcp.CallToolResult{IsError: true}, MapOutput{}, err
	}

	log.WithFields(logrus.Fields{
		"path":  path,
		"type":  input.Type,
		"files": len(listing.Files),
	}).Debug("map_directory")
	return nil, MapOutput{
		Root:  listing.Root,
		Files: listing.Files,
		Total: len(listing.Files),
	}, nil
}

func handleReadDocument(ctx context.Context, req *mcp.CallToolRequest, input ReadInput) (*mcp.CallToolResult, ReadOutput, error) {
	format, err := value.ParseFormat(input.Format)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ReadOutput{}, err
	}

	path := strings.TrimSpace(input.Path)
	doc, err := fileSystem.ReadDocument(path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ReadOutput{}, err
	}

	encoded, err := value.Marshal(doc.Value, format)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ReadOutput{}, err
	}

	return nil, ReadOutput{Result: string(encoded), Markdown: doc.Markdown}, nil
}

func handleMergeFrontmatter(ctx context.Context, req *mcp.CallToolRequest, input MergeFrontmatterInput) (*mcp.CallToolResult, MergeFrontmatterOutput, error) {
	path := strings.TrimSpace(input.Path)

	patchValue, err := value.Parse([]byte(input.Patch))
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, MergeFrontmatterOutput{Path: path}, fmt.Errorf("patch: %w", err)
	}
	patch, ok := patchValue.(*value.Map)
	if !ok {
		return &mcp.CallToolResult{IsError: true}, MergeFrontmatterOutput{Path: path},
			fmt.Errorf("patch must be a mapping, got %s", value.KindOf(patchValue))
	}

	fm, err := fileSystem.MergeFrontmatter(types.MergeFrontmatterParams{Path: path, Patch: patch})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, MergeFrontmatterOutput{Path: path}, err
	}

	encoded, err := value.Marshal(fm, value.FormatYAML)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, MergeFrontmatterOutput{Path: path}, err
	}

	log.WithFields(logrus.Fields{"path": path, "keys": patch.Len()}).Info("frontmatter merged")
	return nil, MergeFrontmatterOutput{Success: true, Path: path, Frontmatter: string(encoded)}, nil
}
