package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/namingcase/naming"
)

// HungarianFlags contains flags for the hungarian command
type HungarianFlags struct {
	Format string
}

// HungarianResult is the structured output for one stripped identifier.
type HungarianResult struct {
	Identifier string      `json:"identifier" yaml:"identifier"`
	Case       naming.Case `json:"case" yaml:"case"`
	Value      string      `json:"value" yaml:"value"`
}

// SetupHungarianFlags creates and configures a FlagSet for the hungarian command.
func SetupHungarianFlags() (*flag.FlagSet, *HungarianFlags) {
	fs := flag.NewFlagSet("hungarian", flag.ContinueOnError)
	flags := &HungarianFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: namingcase hungarian [flags] <identifier>... | -\n\n")
		Writef(fs.Output(), "Strip the lowercase type prefix from camelCase identifiers in Hungarian notation.\n")
		Writef(fs.Output(), "Identifiers that are not camelCase are reported as invalid.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  namingcase hungarian iPageSize szUserName\n")
	}

	return fs, flags
}

// HandleHungarian executes the hungarian command
func HandleHungarian(args []string) error {
	fs, flags := SetupHungarianFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	inputs, err := ReadIdentifiers(fs.Args(), stdin)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		fs.Usage()
		return fmt.Errorf("hungarian command requires at least one identifier or '-' for stdin")
	}

	results := make([]HungarianResult, 0, len(inputs))
	for _, input := range inputs {
		id := naming.FromHungarian(input)
		results = append(results, HungarianResult{Identifier: input, Case: id.Case, Value: id.String()})
	}

	if flags.Format != FormatText {
		return OutputStructured(stdout, results, flags.Format)
	}

	for _, r := range results {
		if r.Case == naming.Invalid {
			Writef(stderr, "%s: not a camelCase identifier\n", r.Identifier)
			continue
		}
		Writef(stdout, "%s\n", r.Value)
	}
	return nil
}
