package mcpserver

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/namingcase/caseerrors"
	"github.com/erraggy/namingcase/naming"
)

type convertInput struct {
	Identifiers []string `json:"identifiers"      jsonschema:"Identifiers to convert"`
	Target      string   `json:"target,omitempty" jsonschema:"Target case (screaming_snake\\, snake\\, kebab\\, camel\\, or pascal). Required unless NAMINGCASE_DEFAULT_TARGET is set."`
}

type convertedIdentifier struct {
	Identifier string `json:"identifier"`
	SourceCase string `json:"source_case"`
	Result     string `json:"result,omitempty"`
	Error      string `json:"error,omitempty"`
}

type convertOutput struct {
	Target    string                `json:"target"`
	Count     int                   `json:"count"`
	Converted int                   `json:"converted"`
	Failed    int                   `json:"failed"`
	Results   []convertedIdentifier `json:"results"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	target, err := resolveTarget(input.Target)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	if err := validateBatch(input.Identifiers); err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Target:  target.String(),
		Count:   len(input.Identifiers),
		Results: make([]convertedIdentifier, 0, len(input.Identifiers)),
	}
	for _, s := range input.Identifiers {
		id := naming.Classify(s)
		item := convertedIdentifier{Identifier: s, SourceCase: id.Case.String()}
		converted, err := id.To(target)
		if err != nil {
			item.Error = err.Error()
			output.Failed++
		} else {
			item.Result = converted
			output.Converted++
		}
		output.Results = append(output.Results, item)
	}

	slog.Debug("convert", "target", output.Target, "count", output.Count, "failed", output.Failed)
	return nil, output, nil
}

// resolveTarget parses the requested target, falling back to the
// configured default when none is given.
func resolveTarget(name string) (naming.Case, error) {
	if name == "" {
		if isConversionTarget(cfg.DefaultTarget) {
			return cfg.DefaultTarget, nil
		}
		return naming.Invalid, &caseerrors.ConfigError{Option: "target", Message: "target case is required"}
	}
	target, err := naming.ParseCase(name)
	if err != nil {
		return naming.Invalid, err
	}
	if !isConversionTarget(target) {
		return naming.Invalid, &caseerrors.ConfigError{Option: "target", Value: name, Message: "not a conversion target"}
	}
	return target, nil
}
