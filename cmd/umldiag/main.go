// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/umldiag

// umldiag generates PlantUML class diagrams from schema definitions.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/umldiag"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/umldiag"
	_buildTime string
)

// cliOptions describes umldiag CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Generate generateCommand `command:"generate" description:"Generate PlantUML diagram text from schema"`
	Render   renderCommand   `command:"render" description:"Render schema diagram to an image via a Kroki service"`
}

// classSelectFlags groups diagram class selection flags.
type classSelectFlags struct {
	Classes []string `short:"c" long:"class" description:"Restrict diagram to classes reachable from this class (repeatable; all classes when omitted)"`
}

// renderServiceFlags groups rendering service flags.
type renderServiceFlags struct {
	Server  string `short:"s" long:"server" description:"Kroki rendering service base URL" default:"https://kroki.io"`
	Format  string `short:"f" long:"format" description:"Rendered image format" choice:"svg" choice:"png" default:"svg"`
	Timeout int    `short:"T" long:"timeout" description:"Rendering service timeout in seconds" default:"30"`
}

// generateCommand converts schema definitions to diagram text.
type generateCommand struct {
	runner *cliRunner
	Args   struct {
		Schema string `positional-arg-name:"schema" description:"Input schema file path (YAML)" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output diagram file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	SelectFlags classSelectFlags `group:"Class Select"`
}

// Execute runs generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(command.Args.Schema, command.Args.Output, command.SelectFlags.Classes)
}

// renderCommand renders schema diagrams to image files.
type renderCommand struct {
	runner *cliRunner
	Args   struct {
		Schema    string `positional-arg-name:"schema" description:"Input schema file path (YAML)" required:"yes"`
		Directory string `positional-arg-name:"directory" description:"Output directory; image file is named after the schema" required:"yes"`
	} `positional-args:"yes"`

	SelectFlags classSelectFlags   `group:"Class Select"`
	ServerFlags renderServiceFlags `group:"Render Service"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(
		command.Args.Schema,
		command.Args.Directory,
		command.SelectFlags.Classes,
		command.ServerFlags.Server,
		command.ServerFlags.Format,
		command.ServerFlags.Timeout,
	)
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "umldiag"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runGenerate executes schema-to-diagram flow and writes result to stdout or file.
func (runner *cliRunner) runGenerate(schemaPath, outputPath string, classes []string) error {
	model, err := umldiag.LoadSchemaFile(schemaPath)
	if err != nil {
		return fmt.Errorf("load schema %q: %w", schemaPath, err)
	}

	diagram, err := umldiag.Generate(model, umldiag.Options{Classes: classes})
	if err != nil {
		return fmt.Errorf("generate diagram: %w", err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, diagram); err != nil {
			return fmt.Errorf("write diagram to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(diagram), 0o600); err != nil {
		return fmt.Errorf("write diagram file %q: %w", outputPath, err)
	}

	return nil
}

// runRender executes schema-to-image flow against a rendering service.
func (runner *cliRunner) runRender(schemaPath, directory string, classes []string, server, format string, timeoutSeconds int) error {
	model, err := umldiag.LoadSchemaFile(schemaPath)
	if err != nil {
		return fmt.Errorf("load schema %q: %w", schemaPath, err)
	}

	timeout := time.Duration(timeoutSeconds) * time.Second
	renderer := umldiag.NewKrokiRenderer(umldiag.RenderOptions{
		Server:  server,
		Format:  umldiag.ImageFormat(format),
		Timeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	path, err := umldiag.WriteImage(ctx, renderer, model, umldiag.Options{Classes: classes}, directory, umldiag.ImageFormat(format))
	if err != nil {
		return fmt.Errorf("render diagram: %w", err)
	}

	_, _ = fmt.Fprintln(runner.stdout, path)
	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Generate.runner = runner
	options.Render.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Generate PlantUML class diagram notation from a schema definition.
Reads schema from the file argument; writes notation to file argument or stdout.
Use --class to restrict output to classes reachable from a seed set.

Examples:
> $ %s generate schema.yaml > schema.puml
> $ %s generate -c Person -c Dataset schema.yaml diagrams/subset.puml
`, programName, programName)),
		"render": strings.TrimSpace(fmt.Sprintf(`
Render a schema diagram to an image through a Kroki service.
The image file is written into the directory argument and named after the schema.

Examples:
> $ %s render schema.yaml diagrams/
> $ %s render -s http://localhost:8000 -f png -c Person schema.yaml diagrams/
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
