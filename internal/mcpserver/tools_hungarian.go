package mcpserver

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/namingcase/naming"
)

type strippedIdentifier struct {
	Identifier string `json:"identifier"`
	Case       string `json:"case"`
	Value      string `json:"value"`
}

type hungarianOutput struct {
	Count    int                  `json:"count"`
	Stripped int                  `json:"stripped"`
	Results  []strippedIdentifier `json:"results"`
}

func handleHungarian(_ context.Context, _ *mcp.CallToolRequest, input identifiersInput) (*mcp.CallToolResult, hungarianOutput, error) {
	if err := validateBatch(input.Identifiers); err != nil {
		return errResult(err), hungarianOutput{}, nil
	}

	output := hungarianOutput{
		Count:   len(input.Identifiers),
		Results: make([]strippedIdentifier, 0, len(input.Identifiers)),
	}
	for _, s := range input.Identifiers {
		id := naming.FromHungarian(s)
		if id.Valid() {
			output.Stripped++
		}
		output.Results = append(output.Results, strippedIdentifier{
			Identifier: s,
			Case:       id.Case.String(),
			Value:      id.String(),
		})
	}

	slog.Debug("hungarian", "count", output.Count, "stripped", output.Stripped)
	return nil, output, nil
}
