package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/namingcase/caseerrors"
	"github.com/erraggy/namingcase/naming"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Target string
	Format string
	Strict bool
	Quiet  bool
}

// ConvertResult is the structured output for one converted identifier.
type ConvertResult struct {
	Identifier string      `json:"identifier" yaml:"identifier"`
	SourceCase naming.Case `json:"source_case" yaml:"source_case"`
	Result     string      `json:"result,omitempty" yaml:"result,omitempty"`
	Error      string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Target, "t", "", "target case: screaming_snake, snake, kebab, camel, pascal (required)")
	fs.StringVar(&flags.Target, "to", "", "target case: screaming_snake, snake, kebab, camel, pascal (required)")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Strict, "strict", false, "exit with an error if any identifier is invalid")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: do not report invalid identifiers on stderr")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: do not report invalid identifiers on stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: namingcase convert -t <case> [flags] <identifier>... | -\n\n")
		Writef(fs.Output(), "Convert identifiers to another naming convention.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nThe target case may be written in any convention (snake, SCREAMING_SNAKE, screamingSnake, ...).\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  namingcase convert -t snake fooBar FooBar foo-bar\n")
		Writef(fs.Output(), "  namingcase convert --to screaming-snake -f yaml userProfile\n")
		Writef(fs.Output(), "  cat names.txt | namingcase convert -t kebab --strict -\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    All identifiers converted (or invalid ones skipped)\n")
		Writef(fs.Output(), "  1    Usage error, or an invalid identifier in --strict mode\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()
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

	if flags.Target == "" {
		fs.Usage()
		return fmt.Errorf("target case is required (use -t or --to)")
	}
	target, err := naming.ParseCase(flags.Target)
	if err != nil {
		return err
	}
	if target == naming.SingleWord || target == naming.Invalid {
		return &caseerrors.ConfigError{Option: "to", Value: flags.Target, Message: "not a conversion target"}
	}

	inputs, err := ReadIdentifiers(fs.Args(), stdin)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		fs.Usage()
		return fmt.Errorf("convert command requires at least one identifier or '-' for stdin")
	}

	results := make([]ConvertResult, 0, len(inputs))
	failed := 0
	for _, input := range inputs {
		id := naming.Classify(input)
		result := ConvertResult{Identifier: input, SourceCase: id.Case}
		out, err := id.To(target)
		if err != nil {
			result.Error = err.Error()
			failed++
		} else {
			result.Result = out
		}
		results = append(results, result)
	}

	if flags.Format != FormatText {
		if err := OutputStructured(stdout, results, flags.Format); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Error != "" {
				if !flags.Quiet {
					Writef(stderr, "%s: %s\n", r.Identifier, r.Error)
				}
				continue
			}
			Writef(stdout, "%s\n", r.Result)
		}
	}

	if flags.Strict && failed > 0 {
		return &caseerrors.ConversionError{
			Target: target.String(),
			Reason: fmt.Sprintf("%d of %d identifier(s) are not in a recognized format", failed, len(inputs)),
		}
	}
	return nil
}
