// Package generator orchestrates a delegen generation run.
//
// A run is synchronous and single-pass: invoke the external client generator
// (its declaration tree does not exist until that succeeds), load the
// resolved schema graph and the declaration tree, project the delegate
// hierarchy over it, and persist the artifacts. The transformation itself
// needs no parallelism - declaration count is bounded by schema size and
// every declaration is processed independently once the hierarchy index is
// built.
//
// Failure policy follows the run-level taxonomy: the external generator gets
// exactly one retry with verbose diagnostics before the run is fatal; artifact
// writes are staged in a temporary directory and renamed into place so a
// failed run persists no partial output.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/delegen/delegen"
	"github.com/delegen/delegen/pkg/decl"
	"github.com/delegen/delegen/pkg/project"
	"github.com/delegen/delegen/pkg/schema"
)

// Artifact file names within the output directory.
const (
	// DeclarationsFile is the transformed declaration document, rendered as
	// a drop-in replacement for the client's own declaration file.
	DeclarationsFile = "delegates.d.ts"

	// DocumentFile is the transformed declaration tree in interchange form,
	// for downstream tooling that consumes the structured document.
	DocumentFile = "delegates.json"

	// ReexportFile points consumers at either the original or the
	// transformed declarations, depending on whether a hierarchy exists.
	ReexportFile = "index.d.ts"
)

// Options configures a generation run.
type Options struct {
	// SchemaPath is the resolved schema graph document.
	SchemaPath string

	// GeneratorCommand is the external client generator invocation (argv).
	// Empty means the declaration tree already exists and the external step
	// is skipped.
	GeneratorCommand []string

	// DeclarationsPath is where the external generator writes its
	// declaration document.
	DeclarationsPath string

	// OutputDir receives the artifacts.
	OutputDir string

	// ClientImport is the module specifier of the original client
	// declarations, used by the re-export when no hierarchy exists.
	// Defaults to "./client".
	ClientImport string

	// Project carries the naming contract (namespace, aux prefix).
	Project project.Config

	// Stderr receives operator diagnostics. Defaults to os.Stderr.
	Stderr io.Writer
}

func (o *Options) stderr() io.Writer {
	if o.Stderr != nil {
		return o.Stderr
	}
	return os.Stderr
}

func (o *Options) clientImport() string {
	if o.ClientImport != "" {
		return o.ClientImport
	}
	return "./client"
}

// Result summarizes a completed run.
type Result struct {
	// Projected is true when a delegate hierarchy existed and the
	// transformed declarations were written.
	Projected bool

	// Warnings carries the recoverable per-hierarchy degradations.
	Warnings []project.Warning

	// Artifacts lists the files written, relative to OutputDir.
	Artifacts []string
}

// Run executes a generation run end to end.
func Run(ctx context.Context, opts Options) (*Result, error) {
	graph, err := schema.LoadGraph(opts.SchemaPath)
	if err != nil {
		return nil, err
	}

	if err := runClientGenerator(ctx, opts); err != nil {
		return nil, err
	}

	doc, err := decl.Load(opts.DeclarationsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", delegen.ErrNoDeclarations, err)
	}

	projector := project.New(graph, &opts.Project)

	result := &Result{Projected: projector.NeedsProjection()}
	files := make(map[string][]byte)

	if result.Projected {
		out, warnings := projector.Transform(doc)
		result.Warnings = warnings

		var rendered bytes.Buffer
		if err := out.Render(&rendered); err != nil {
			return nil, err
		}
		encoded, err := out.Encode()
		if err != nil {
			return nil, err
		}
		files[DeclarationsFile] = rendered.Bytes()
		files[DocumentFile] = encoded
		files[ReexportFile] = reexport("./delegates")
	} else {
		files[ReexportFile] = reexport(opts.clientImport())
	}

	written, err := writeArtifacts(opts.OutputDir, files)
	if err != nil {
		return nil, err
	}
	result.Artifacts = written

	return result, nil
}

// runClientGenerator invokes the external client generator. The first
// failure is retried exactly once with output streamed to the operator; a
// second failure is fatal for the run.
func runClientGenerator(ctx context.Context, opts Options) error {
	argv := opts.GeneratorCommand
	if len(argv) == 0 {
		return nil
	}

	run := func(verbose bool) error {
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // command is operator-configured
		if verbose {
			cmd.Stdout = opts.stderr()
			cmd.Stderr = opts.stderr()
		}
		return cmd.Run()
	}

	if err := run(false); err != nil {
		fmt.Fprintf(opts.stderr(), "client generator failed (%v), retrying with verbose output\n", err)
		if err := run(true); err != nil {
			return fmt.Errorf("%w: running %q for schema %s: %v",
				delegen.ErrGenerationFailed, strings.Join(argv, " "), opts.SchemaPath, err)
		}
	}

	return nil
}

// writeArtifacts stages the files in a temporary directory on the output
// filesystem and renames them into place, so a failure partway leaves the
// output directory unchanged.
func writeArtifacts(outputDir string, files map[string][]byte) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	staging, err := os.MkdirTemp(outputDir, ".delegen-")
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := os.WriteFile(filepath.Join(staging, name), files[name], 0o644); err != nil {
			return nil, fmt.Errorf("staging %s: %w", name, err)
		}
	}
	for _, name := range names {
		if err := os.Rename(filepath.Join(staging, name), filepath.Join(outputDir, name)); err != nil {
			return nil, fmt.Errorf("writing %s: %w", filepath.Join(outputDir, name), err)
		}
	}

	return names, nil
}

// reexport builds the thin re-export module pointing consumers at the given
// declarations module.
func reexport(specifier string) []byte {
	return []byte(fmt.Sprintf("// Generated by delegen. Do not edit.\nexport * from '%s';\n", specifier))
}
