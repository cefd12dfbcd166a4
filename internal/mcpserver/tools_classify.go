package mcpserver

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/namingcase/naming"
)

type classifyInput struct {
	Identifiers []string `json:"identifiers"     jsonschema:"Identifiers to classify"`
	Words       *bool    `json:"words,omitempty" jsonschema:"Include extracted words. Defaults to NAMINGCASE_CLASSIFY_WORDS (true)."`
}

type classifiedIdentifier struct {
	Identifier string   `json:"identifier"`
	Case       string   `json:"case"`
	Words      []string `json:"words,omitempty"`
}

type classifyOutput struct {
	Count   int                    `json:"count"`
	Invalid int                    `json:"invalid"`
	Results []classifiedIdentifier `json:"results"`
	Summary []groupCount           `json:"summary,omitempty"`
}

func handleClassify(_ context.Context, _ *mcp.CallToolRequest, input classifyInput) (*mcp.CallToolResult, classifyOutput, error) {
	if err := validateBatch(input.Identifiers); err != nil {
		return errResult(err), classifyOutput{}, nil
	}

	withWords := cfg.ClassifyWords
	if input.Words != nil {
		withWords = *input.Words
	}

	output := classifyOutput{
		Count:   len(input.Identifiers),
		Results: make([]classifiedIdentifier, 0, len(input.Identifiers)),
	}
	for _, s := range input.Identifiers {
		id := naming.Classify(s)
		item := classifiedIdentifier{Identifier: s, Case: id.Case.String()}
		if !id.Valid() {
			output.Invalid++
		} else if withWords {
			// Never fails for a classified identifier.
			item.Words, _ = id.Words()
		}
		output.Results = append(output.Results, item)
	}
	output.Summary = groupAndSort(output.Results, func(r classifiedIdentifier) string { return r.Case })

	slog.Debug("classify", "count", output.Count, "invalid", output.Invalid)
	return nil, output, nil
}
