// Command jsonbctl is a small CLI around the jsonb package: encode JSON
// text to the binary container format, render it back, run JSONPath
// queries, and compare two values under the total order.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/leiysky/jsonb"
	"github.com/leiysky/jsonb/value"
)

var log = logrus.New()

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		log.WithError(err).Error("jsonbctl failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "jsonbctl",
		Short:         "Inspect and query jsonb binary containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newEncodeCmd(), newToStringCmd(), newQueryCmd(), newCompareCmd())
	return root
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <json>",
		Short: "Encode a JSON text value into a jsonb buffer, printed as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := value.Parse([]byte(args[0]))
			if err != nil {
				return errors.Wrap(err, "parse json")
			}
			buf, err := jsonb.Encode(v)
			if err != nil {
				return errors.Wrap(err, "encode")
			}
			log.WithField("bytes", len(buf)).Debug("encoded")
			fmt.Println(hex.EncodeToString(buf))
			return nil
		},
	}
}

func newToStringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-string <hex>",
		Short: "Render a hex-encoded jsonb buffer as canonical JSON text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := decodeHexArg(args[0])
			if err != nil {
				return err
			}
			s, err := jsonb.ToString(buf)
			if err != nil {
				return errors.Wrap(err, "to_string")
			}
			fmt.Println(s)
			return nil
		},
	}
}

func newQueryCmd() *cobra.Command {
	var ignoreCase bool
	cmd := &cobra.Command{
		Use:   "query <hex> <path>",
		Short: "Evaluate a JSONPath expression against a hex-encoded jsonb buffer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := decodeHexArg(args[0])
			if err != nil {
				return err
			}
			doc := jsonb.NewDefaultConfig().WithIgnoreCase(ignoreCase).NewDocument()
			results, err := doc.Query(buf, args[1])
			if err != nil {
				return errors.Wrap(err, "query")
			}
			log.WithField("matches", len(results)).Debug("query complete")
			for _, r := range results {
				s, err := jsonb.ToString(r)
				if err != nil {
					return errors.Wrap(err, "to_string result")
				}
				fmt.Println(s)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "case-insensitive member lookup")
	return cmd
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <hexA> <hexB>",
		Short: "Print -1, 0, or 1 per the total order over two jsonb buffers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := decodeHexArg(args[0])
			if err != nil {
				return err
			}
			b, err := decodeHexArg(args[1])
			if err != nil {
				return err
			}
			fmt.Println(jsonb.Compare(a, b))
			return nil
		},
	}
}

func decodeHexArg(s string) ([]byte, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decode hex argument")
	}
	return buf, nil
}
