package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/transform"
)

var errReadInput = errors.New("typoglyph: cannot read input")

// readInput gathers the text to scramble: arguments joined by single
// spaces, the --in file, or stdin, in that order of preference. File and
// stdin bytes are decoded through the named encoding.
func readInput(args []string, inPath, encodingName string) (string, error) {
	if len(args) > 0 {
		// Arguments arrive decoded by the shell already.
		return strings.Join(args, " "), nil
	}

	var src io.Reader
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return "", fmt.Errorf("%w: %v", errReadInput, err)
		}
		defer f.Close()
		src = f
	} else {
		src = os.Stdin
	}

	enc, err := resolveEncoding(encodingName)
	if err != nil {
		return "", err
	}
	if enc != nil {
		src = transform.NewReader(src, enc.NewDecoder())
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errReadInput, err)
	}

	return string(data), nil
}

// writeOutput writes text to stdout or the --out file, encoding through the
// named encoding. Terminal output gets a trailing newline; file output is
// written verbatim.
func writeOutput(text, outPath, encodingName string) error {
	enc, err := resolveEncoding(encodingName)
	if err != nil {
		return err
	}

	if outPath == "" {
		fmt.Println(text)
		return nil
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("typoglyph: cannot write output: %w", err)
	}

	var dst io.Writer = f
	var tw *transform.Writer
	if enc != nil {
		tw = transform.NewWriter(f, enc.NewEncoder())
		dst = tw
	}

	if _, err = io.WriteString(dst, text); err != nil {
		f.Close()
		return fmt.Errorf("typoglyph: cannot write output: %w", err)
	}
	if tw != nil {
		if err = tw.Close(); err != nil {
			f.Close()
			return fmt.Errorf("typoglyph: cannot write output: %w", err)
		}
		return f.Close()
	}

	return f.Close()
}
