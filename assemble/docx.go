package assemble

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

// DocxOptions controls AssembleDocx's external converter invocation.
type DocxOptions struct {
	// ConverterPath is the external RTF-to-DOCX converter binary. Nothing
	// in this module ships or vendors one (spec.md §6.5's Non-goal on
	// DOCX/PDF/HTML conversion); callers point this at whatever converter
	// their deployment has installed.
	ConverterPath string
	Landscape     []bool // one entry per input file, or nil for all-portrait
	Logger        *zap.Logger
}

// AssembleDocx shells out to an external converter to combine inputFiles
// into a single DOCX (spec.md §6.5): this module never performs the RTF to
// DOCX conversion itself, matching the teacher's own pattern of treating
// the actual document conversion as an external binary it only supervises
// (cmd/mhl/main.go's "converterPath" invocation) — success is exit code 0,
// non-nil error otherwise, with stderr captured into the returned error.
func AssembleDocx(inputFiles []string, outputFile string, opts DocxOptions) error {
	if opts.ConverterPath == "" {
		return fmt.Errorf("assemble: AssembleDocx: no converter configured")
	}
	if len(inputFiles) == 0 {
		return fmt.Errorf("assemble: AssembleDocx: no input files given")
	}
	if len(opts.Landscape) > 0 && len(opts.Landscape) != len(inputFiles) {
		return fmt.Errorf("assemble: AssembleDocx: landscape list length %d does not match %d input files", len(opts.Landscape), len(inputFiles))
	}

	args := append(append([]string(nil), inputFiles...), outputFile)
	cmd := exec.Command(opts.ConverterPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("assemble: AssembleDocx: redirecting converter output: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("assemble: AssembleDocx: starting converter: %w", err)
	}

	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		if opts.Logger != nil {
			opts.Logger.Debug("docx converter", zap.String("line", scanner.Text()))
		}
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("assemble: AssembleDocx: converter failed: %w: %s", err, stderr.String())
	}
	return nil
}
