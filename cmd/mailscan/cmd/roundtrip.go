package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-mailparse/message"
)

var roundtripCanonical bool

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip message...",
	Short: "Shows the diff of a message round-trip",
	Long: `Parses each message and writes it back out, then compares the output to
the original. With --canonical, each header field is rewritten with a single
line ending style chosen from its conformance flags instead of its original
bytes, which shows what a strict rewrite would change.`,
	Args: cobra.MinimumNArgs(1),
	RunE: RunRoundtrip,
}

func init() {
	roundtripCmd.Flags().BoolVar(&roundtripCanonical, "canonical", false, "rewrite fields by their conformance flags")
	rootCmd.AddCommand(roundtripCmd)
}

// RunRoundtrip checks the round-trip of every file named in args.
func RunRoundtrip(cmd *cobra.Command, args []string) error {
	changed := 0
	for _, path := range args {
		same, err := roundTrip(cmd.OutOrStdout(), path, roundtripCanonical, parseOptions()...)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if !same {
			changed++
		}
	}

	if changed > 0 {
		return fmt.Errorf("%d of %d messages changed on round-trip", changed, len(args))
	}
	return nil
}

// roundTrip parses the message at path, writes it back out, and reports to w
// whether the output matched. When it does not, a diff is written too.
func roundTrip(w io.Writer, path string, canonical bool, opts ...message.ParseOption) (bool, error) {
	orig, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	m, err := message.Parse(bytes.NewReader(orig), opts...)
	if err != nil {
		return false, err
	}

	out := &bytes.Buffer{}
	if canonical {
		err = writeCanonical(out, m)
	} else {
		_, err = m.WriteTo(out)
	}
	if err != nil {
		return false, err
	}

	if bytes.Equal(orig, out.Bytes()) {
		logger.Debug("round-trip matched", "path", path, "bytes", len(orig))
		_, err = fmt.Fprintf(w, "ok   %s\n", path)
		return true, err
	}

	logger.Info("round-trip changed message", "path", path, "original", len(orig), "output", out.Len())

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(orig), out.String(), false)

	var diff string
	if color.NoColor {
		diff = dmp.PatchToText(dmp.PatchMake(string(orig), diffs))
	} else {
		diff = dmp.DiffPrettyText(diffs)
	}

	_, err = fmt.Fprintf(w, "diff %s\n%s\n", path, diff)
	return false, err
}

// writeCanonical writes each field of m with field.Field.WriteTo, which picks
// the line ending from the field's conformance, then the rest of the message.
func writeCanonical(w io.Writer, m *message.Opaque) error {
	for _, f := range m.ListFields() {
		if _, err := f.WriteTo(w); err != nil {
			return err
		}
	}

	if _, err := w.Write(m.Break().Bytes()); err != nil {
		return err
	}

	if m.Reader != nil {
		if _, err := io.Copy(w, m.Reader); err != nil {
			return err
		}
	}
	return nil
}
