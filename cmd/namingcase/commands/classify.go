package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/erraggy/namingcase/naming"
)

// ClassifyFlags contains flags for the classify command
type ClassifyFlags struct {
	Format string
	Words  bool
}

// ClassifyResult is the structured output for one classified identifier.
type ClassifyResult struct {
	Identifier string      `json:"identifier" yaml:"identifier"`
	Case       naming.Case `json:"case" yaml:"case"`
	Words      []string    `json:"words,omitempty" yaml:"words,omitempty"`
}

// SetupClassifyFlags creates and configures a FlagSet for the classify command.
// Returns the FlagSet and a ClassifyFlags struct with bound flag variables.
func SetupClassifyFlags() (*flag.FlagSet, *ClassifyFlags) {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	flags := &ClassifyFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Words, "w", false, "include the extracted words")
	fs.BoolVar(&flags.Words, "words", false, "include the extracted words")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: namingcase classify [flags] <identifier>... | -\n\n")
		Writef(fs.Output(), "Report the naming convention of each identifier.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nConventions (in precedence order):\n")
		Writef(fs.Output(), "  single_word, screaming_snake, snake, kebab, camel, pascal; anything else is invalid\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  namingcase classify fooBar FOO_BAR foo-bar\n")
		Writef(fs.Output(), "  namingcase classify -w -f json userProfileId\n")
		Writef(fs.Output(), "  cat names.txt | namingcase classify -\n")
	}

	return fs, flags
}

// HandleClassify executes the classify command
func HandleClassify(args []string) error {
	fs, flags := SetupClassifyFlags()
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
		return fmt.Errorf("classify command requires at least one identifier or '-' for stdin")
	}

	results := make([]ClassifyResult, 0, len(inputs))
	for _, input := range inputs {
		id := naming.Classify(input)
		result := ClassifyResult{Identifier: id.String(), Case: id.Case}
		if flags.Words && id.Valid() {
			// Cannot fail for a valid identifier.
			result.Words, _ = id.Words()
		}
		results = append(results, result)
	}

	if flags.Format != FormatText {
		return OutputStructured(stdout, results, flags.Format)
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, r := range results {
		if flags.Words {
			Writef(tw, "%s\t%s\t%s\n", r.Identifier, CaseTitle(r.Case), strings.Join(r.Words, " "))
		} else {
			Writef(tw, "%s\t%s\n", r.Identifier, CaseTitle(r.Case))
		}
	}
	return tw.Flush()
}
