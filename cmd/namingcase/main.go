package main

import (
	"fmt"
	"os"

	"github.com/erraggy/namingcase"
	"github.com/erraggy/namingcase/cmd/namingcase/commands"
)

// commandNames lists the subcommands considered for typo suggestions.
var commandNames = []string{"classify", "convert", "hungarian", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("namingcase %s\n", namingcase.Version())
		fmt.Println(namingcase.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "classify":
		err = commands.HandleClassify(os.Args[2:])
	case "convert":
		err = commands.HandleConvert(os.Args[2:])
	case "hungarian":
		err = commands.HandleHungarian(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// levenshtein returns the edit distance between a and b.
func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`namingcase - Identifier Naming Convention Tools

Usage:
  namingcase <command> [options]

Commands:
  classify    Report the naming convention of identifiers
  convert     Convert identifiers to another naming convention
  hungarian   Strip Hungarian notation type prefixes
  mcp         Start an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  namingcase classify fooBar FOO_BAR foo-bar
  namingcase convert -t snake userProfileId
  namingcase convert --to kebab -f json FooBar
  namingcase hungarian iPageSize
  cat names.txt | namingcase classify -

Run 'namingcase <command> --help' for more information on a command.`)
}
