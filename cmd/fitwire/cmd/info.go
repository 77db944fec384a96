package cmd

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssargent/fitwire/pkg/fit"
	"github.com/ssargent/fitwire/pkg/profile"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print a summary of an activity file",
	Long: `Decode an activity file and print its header fields plus a count
of each message type.

Example:
  fitwire info ride.fit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		counts := make(map[uint16]int)
		total := 0
		var first, last uint32

		dec := fit.NewDecoder(f)
		header, err := dec.Decode(func(m fit.Message) {
			total++
			counts[m.GlobalMsgNum]++
			if m.Timestamp != 0 {
				if first == 0 {
					first = m.Timestamp
				}
				last = m.Timestamp
			}
		})
		if err != nil {
			return fmt.Errorf("decode failed after %d messages: %w", total, err)
		}

		fmt.Printf("protocol version: %d.%d\n", header.ProtocolVersion()>>4, header.ProtocolVersion()&0x0f)
		fmt.Printf("profile version:  %d\n", header.ProfileVersion())
		fmt.Printf("data size:        %d bytes\n", header.DataSize())
		fmt.Printf("checksum:         0x%04x\n", dec.Checksum())
		fmt.Printf("messages:         %d\n", total)
		if first != 0 {
			start := time.Unix(int64(first), 0).UTC()
			fmt.Printf("start:            %s\n", start.Format(time.RFC3339))
			fmt.Printf("duration:         %s\n", time.Duration(last-first)*time.Second)
		}

		nums := make([]uint16, 0, len(counts))
		for num := range counts {
			nums = append(nums, num)
		}
		sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

		fmt.Println()
		for _, num := range nums {
			fmt.Printf("  %-28s %d\n", profile.MesgName(num), counts[num])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
