package commands

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/namingcase/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: namingcase mcp\n\n")
		Writef(fs.Output(), "Start an MCP (Model Context Protocol) server over stdio.\n")
		Writef(fs.Output(), "Exposes the classify, convert, and hungarian tools to MCP clients.\n\n")
		Writef(fs.Output(), "Environment:\n")
		Writef(fs.Output(), "  NAMINGCASE_MAX_BATCH            maximum identifiers per call (default 1000)\n")
		Writef(fs.Output(), "  NAMINGCASE_MAX_IDENTIFIER_LEN   maximum identifier length in bytes (default 4096)\n")
		Writef(fs.Output(), "  NAMINGCASE_DEFAULT_TARGET       convert target used when none is given\n")
		Writef(fs.Output(), "  NAMINGCASE_CLASSIFY_WORDS       include words in classify results (default true)\n")
		Writef(fs.Output(), "  NAMINGCASE_LOG_LEVEL            debug, info, warn, or error (default warn)\n")
	}

	return fs
}

// HandleMCP runs the MCP server until the client disconnects or the
// process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return errors.New("mcp command takes no arguments")
	}

	// stdout carries the protocol; logs go to stderr.
	slog.SetDefault(mcpserver.NewLogger(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
