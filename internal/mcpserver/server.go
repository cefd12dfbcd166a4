// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes namingcase capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"
	"sort"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/namingcase"
	"github.com/erraggy/namingcase/caseerrors"
)

const serverInstructions = `namingcase MCP server: classifies identifiers by naming convention and converts them between conventions.

Recognized conventions, in classification precedence order: single_word, screaming_snake, snake, kebab, camel, pascal. Anything else is invalid. Words are ASCII letter runs with optional trailing digits.

Configuration: defaults are configurable via NAMINGCASE_* environment variables set in your MCP client config.

Key settings:
- NAMINGCASE_MAX_BATCH (default: 1000): maximum identifiers per tool call
- NAMINGCASE_MAX_IDENTIFIER_LEN (default: 4096): maximum identifier length in bytes
- NAMINGCASE_DEFAULT_TARGET: target case used by convert when none is given
- NAMINGCASE_CLASSIFY_WORDS (default: true): include extracted words in classify results
- NAMINGCASE_LOG_LEVEL (default: warn): server log level (logs go to stderr)`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "namingcase", Version: namingcase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	slog.Debug("starting MCP server", "version", namingcase.Version(), "max_batch", cfg.MaxBatch)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify",
		Description: "Classify identifiers by naming convention. Returns the case of each identifier (single_word, screaming_snake, snake, kebab, camel, pascal, or invalid) and, unless disabled via NAMINGCASE_CLASSIFY_WORDS, the words it is made of. A summary counts identifiers per case.",
	}, handleClassify)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert identifiers to a target naming convention: screaming_snake, snake, kebab, camel, or pascal. The target name may be written in any convention. Invalid identifiers are reported per item with an error instead of failing the whole call. A default target is configurable via NAMINGCASE_DEFAULT_TARGET.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "hungarian",
		Description: "Strip the lowercase type prefix from camelCase identifiers written in Hungarian notation (iPageSize becomes PageSize). Identifiers that are not camelCase are returned unchanged with case invalid.",
	}, handleHungarian)
}

// identifiersInput is the batch of identifiers shared by every tool.
type identifiersInput struct {
	Identifiers []string `json:"identifiers" jsonschema:"Identifiers to process"`
}

// validateBatch enforces the configured batch and length limits.
func validateBatch(ids []string) error {
	if len(ids) == 0 {
		return &caseerrors.ConfigError{Option: "identifiers", Message: "at least one identifier is required"}
	}
	if len(ids) > cfg.MaxBatch {
		return &caseerrors.ResourceLimitError{
			ResourceType: "batch_size",
			Limit:        int64(cfg.MaxBatch),
			Actual:       int64(len(ids)),
		}
	}
	for _, id := range ids {
		if len(id) > cfg.MaxIdentifierLen {
			return &caseerrors.ResourceLimitError{
				ResourceType: "identifier_length",
				Limit:        int64(cfg.MaxIdentifierLen),
				Actual:       int64(len(id)),
				Message:      "identifier starting " + truncate(id, 32),
			}
		}
	}
	return nil
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// groupCount represents a single group in summary results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		counts[keyFn(item)]++
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}
