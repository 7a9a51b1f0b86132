package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zostay/go-mailparse/header/field"
	"github.com/zostay/go-mailparse/message"
)

var headersCmd = &cobra.Command{
	Use:   "headers message...",
	Short: "Lists the header fields of each message exactly as written",
	Args:  cobra.MinimumNArgs(1),
	RunE:  RunHeaders,
}

func init() {
	rootCmd.AddCommand(headersCmd)
}

var (
	flagColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

// RunHeaders lists the headers of every file named in args. A file that fails
// to parse is reported and skipped.
func RunHeaders(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if err := listHeaders(cmd.OutOrStdout(), path, parseOptions()...); err != nil {
			failed++
			logger.Error("unable to parse header", "path", path, "error", err)
			_, _ = errorColor.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d messages failed to parse", failed, len(args))
	}
	return nil
}

// listHeaders writes one line per header field of the message at path: index,
// name, separator, and raw value quoted, then the conformance flags.
func listHeaders(w io.Writer, path string, opts ...message.ParseOption) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	m, err := message.Parse(f, opts...)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s\n", path); err != nil {
		return err
	}

	for i, hf := range m.ListFields() {
		if _, err := fmt.Fprintf(w, "%4d %q %q %q %s\n",
			i, hf.Name(), hf.Separator(), hf.RawValue(), conformance(hf.Conformance()),
		); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "body offset %d, terminator %q\n", len(m.Header.Bytes()), m.Break())
	return err
}

// conformance renders c, highlighted when it is not canonical.
func conformance(c field.Conformance) string {
	if c.IsCanonical() {
		return c.String()
	}
	return flagColor.Sprint(c.String())
}
