// Command numfmt formats, parses and verifies JSON number literals using
// the shortest round-trip representation.
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	cyberphone "github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"

	"github.com/lattice-substrate/json-number/grisu"
	"github.com/lattice-substrate/json-number/number"
	"github.com/lattice-substrate/json-number/numerr"
)

const (
	exitSuccess = 0

	// maxInputSize bounds the bytes read from a file or stdin.
	maxInputSize = 16 * 1024 * 1024
)

const usage = "usage: numfmt <format|parse|verify|compare> [options] [file|-]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	if len(args) == 0 {
		return writeClassifiedError(stderr, numerr.New(numerr.CLIUsage, -1, usage))
	}

	var each func(tok string, stdout io.Writer) error
	switch args[0] {
	case "format":
		each = formatToken
	case "parse":
		each = parseToken
	case "verify":
		each = verifyToken
	case "compare":
		each = compareToken
	default:
		return writeClassifiedError(stderr, numerr.Newf(numerr.CLIUsage, -1, "unknown command: %s\n%s", args[0], usage))
	}

	fl, positional, err := parseFlags(args[0], args[1:])
	if err != nil {
		return writeClassifiedError(stderr, err)
	}
	if fl.help {
		if err := writeHelp(stderr, args[0]); err != nil {
			return numerr.InternalIO.ExitCode()
		}
		return exitSuccess
	}
	if len(positional) > 1 {
		return writeClassifiedError(stderr, numerr.New(numerr.CLIUsage, -1, "multiple input files specified"))
	}

	input, err := readInput(positional, stdin)
	if err != nil {
		return writeClassifiedError(stderr, err)
	}

	out := stdout
	if args[0] == "verify" {
		out = io.Discard
	}
	for _, tok := range strings.Fields(string(input)) {
		if err := each(tok, out); err != nil {
			return writeClassifiedError(stderr, err)
		}
	}

	if args[0] == "verify" && !fl.quiet {
		if err := writeLine(stderr, "ok"); err != nil {
			return numerr.InternalIO.ExitCode()
		}
	}
	return exitSuccess
}

type flags struct {
	quiet bool
	help  bool
}

func parseFlags(cmd string, args []string) (flags, []string, error) {
	var f flags
	var positional []string
	consumeAsPositional := false
	for _, arg := range args {
		if consumeAsPositional {
			positional = append(positional, arg)
			continue
		}

		switch arg {
		case "--quiet", "-q":
			if cmd != "verify" {
				return flags{}, nil, numerr.Newf(numerr.CLIUsage, -1, "option %s is not supported by %s", arg, cmd)
			}
			f.quiet = true
		case "--help", "-h":
			f.help = true
		case "--":
			consumeAsPositional = true
		case "-":
			positional = append(positional, arg)
		default:
			if strings.HasPrefix(arg, "-") {
				return flags{}, nil, numerr.Newf(numerr.CLIUsage, -1, "unknown option: %s", arg)
			}
			positional = append(positional, arg)
		}
	}
	return f, positional, nil
}

// parseFloat reads tok as a float64 the way strconv does, rejecting values
// that overflow.
func parseFloat(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	var numErr *strconv.NumError
	switch {
	case errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) && math.IsInf(v, 0):
		return 0, numerr.Wrap(numerr.OutOfRange, -1, fmt.Sprintf("token %q", tok), err)
	case err != nil:
		return 0, numerr.Wrap(numerr.InvalidGrammar, -1, fmt.Sprintf("token %q", tok), err)
	}
	return v, nil
}

func formatToken(tok string, stdout io.Writer) error {
	v, err := parseFloat(tok)
	if err != nil {
		return err
	}
	if err := grisu.Write(stdout, v); err != nil {
		return err
	}
	return writeLine(stdout, "")
}

func parseToken(tok string, stdout io.Writer) error {
	n, err := number.Parse(tok)
	if err != nil {
		return err
	}
	positive, mantissa, exponent := n.Parts()
	return writef(stdout, "%s %t %d %d\n", n, positive, mantissa, exponent)
}

// verifyToken accepts tok only when it is a JSON literal spelled exactly
// the way the formatter spells its value.
func verifyToken(tok string, _ io.Writer) error {
	if _, err := number.Parse(tok); err != nil {
		return err
	}
	v, err := parseFloat(tok)
	if err != nil {
		return err
	}
	want, err := grisu.FormatFloat(v)
	if err != nil {
		return err
	}
	if tok != want {
		return numerr.Newf(numerr.NotShortest, -1, "%q is not the shortest literal, want %q", tok, want)
	}
	return nil
}

// compareToken prints the literal next to the ECMAScript one and whether
// both read back to the same value.
func compareToken(tok string, stdout io.Writer) error {
	v, err := parseFloat(tok)
	if err != nil {
		return err
	}
	ours, err := grisu.FormatFloat(v)
	if err != nil {
		return err
	}
	es6, err := cyberphone.NumberToJSON(v)
	if err != nil {
		return numerr.Wrap(numerr.NotFinite, -1, fmt.Sprintf("ecmascript format of %q", tok), err)
	}
	a, errA := strconv.ParseFloat(ours, 64)
	b, errB := strconv.ParseFloat(es6, 64)
	verdict := "same"
	if errA != nil || errB != nil || a != b {
		verdict = "differ"
	}
	return writef(stdout, "%s %s %s\n", ours, es6, verdict)
}

func readInput(positional []string, stdin io.Reader) ([]byte, error) {
	if len(positional) == 0 || positional[0] == "-" {
		return readBounded(stdin)
	}

	f, err := os.Open(positional[0])
	if err != nil {
		return nil, numerr.Wrap(numerr.CLIUsage, -1, fmt.Sprintf("read file %q", positional[0]), err)
	}
	defer func() {
		_ = f.Close()
	}()

	return readBounded(f)
}

func readBounded(r io.Reader) ([]byte, error) {
	lr := io.LimitReader(r, int64(maxInputSize)+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, numerr.Wrap(numerr.InternalIO, -1, "read input", err)
	}
	if len(data) > maxInputSize {
		return nil, numerr.Newf(numerr.CLIUsage, -1, "input exceeds maximum size %d bytes", maxInputSize)
	}
	return data, nil
}

// writeClassifiedError reports err on stderr and returns the exit code of
// its failure class.
func writeClassifiedError(stderr io.Writer, err error) int {
	class := numerr.ClassOf(err)
	if werr := writef(stderr, "error: %v\n", err); werr != nil {
		return numerr.InternalIO.ExitCode()
	}
	return class.ExitCode()
}

func writeHelp(stderr io.Writer, cmd string) error {
	lines := map[string][]string{
		"format": {
			"usage: numfmt format [file|-]",
			"  Read whitespace-separated numbers, write each as its shortest JSON literal.",
		},
		"parse": {
			"usage: numfmt parse [file|-]",
			"  Parse JSON number literals exactly and print text, sign, mantissa and exponent.",
		},
		"verify": {
			"usage: numfmt verify [--quiet] [file|-]",
			"  Check that every literal is already in shortest form.",
			"  --quiet  Suppress success messages",
		},
		"compare": {
			"usage: numfmt compare [file|-]",
			"  Print each number's literal next to its ECMAScript (RFC 8785) form.",
		},
	}
	for _, l := range lines[cmd] {
		if err := writeLine(stderr, l); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, msg string) error {
	return writef(w, "%s\n", msg)
}

func writef(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return numerr.Wrap(numerr.InternalIO, -1, "write stream", err)
	}
	return nil
}
