package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssargent/fitwire/pkg/fit"
	"github.com/ssargent/fitwire/pkg/profile"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Decode an activity file and print every message",
	Long: `Decode an activity file and print each data message with its
decoded field values.

Example:
  fitwire dump ride.fit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict-crc")

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		var opts []fit.Option
		if strict {
			opts = append(opts, fit.WithStrictCRC())
		}

		n := 0
		dec := fit.NewDecoder(f, opts...)
		header, err := dec.Decode(func(m fit.Message) {
			n++
			fmt.Printf("%-6d %-28s", n, profile.MesgName(m.GlobalMsgNum))
			if m.Timestamp != 0 {
				fmt.Printf(" %s", time.Unix(int64(m.Timestamp), 0).UTC().Format(time.RFC3339))
			}
			fmt.Println()
			for _, fv := range m.Fields {
				printField(fv)
			}
		})
		if header != nil {
			log.Debug().
				Int("header_len", header.Len()).
				Uint32("data_size", header.DataSize()).
				Uint16("profile_version", header.ProfileVersion()).
				Msg("decoded file header")
		}
		if err != nil {
			return fmt.Errorf("decode failed after %d messages: %w", n, err)
		}

		fmt.Printf("%d messages, checksum 0x%04x\n", n, dec.Checksum())
		return nil
	},
}

func printField(fv fit.FieldValue) {
	label := fmt.Sprintf("field %d", fv.FieldNum)
	if fv.DeveloperField {
		label = fmt.Sprintf("dev field %d", fv.FieldNum)
	}

	switch fv.Kind {
	case fit.KindUnsigned:
		fmt.Printf("       %-14s %d\n", label, fv.Uint)
	case fit.KindSigned:
		fmt.Printf("       %-14s %d\n", label, fv.Sint)
	case fit.KindFloat:
		fmt.Printf("       %-14s %g\n", label, fv.Float)
	case fit.KindString:
		fmt.Printf("       %-14s %q\n", label, fv.String)
	case fit.KindBytes:
		fmt.Printf("       %-14s %x\n", label, fv.Bytes)
	}
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().Bool("strict-crc", false, "Fail when the file checksum does not match")
}
