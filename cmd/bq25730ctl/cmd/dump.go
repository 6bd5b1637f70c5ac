package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bq25730-go/drivers/bq25730"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Hex dump of registers 0x00..0x41",
	RunE:  runDump,
}

func init() {
	deviceCommand(dumpCmd)
}

// registerReader is the subset of *bq25730.Device used by dumpRegisters.
type registerReader interface {
	ReadRegisters(reg bq25730.Register, dst []byte) error
}

func runDump(cmd *cobra.Command, args []string) error {
	return dumpRegisters(cmd.OutOrStdout(), dev, bq25730.RegShipModeMsb)
}

// dumpRegisters prints 0x00..last, 16 bytes per line, reading in blocks no
// larger than bq25730.MaxTransfer.
func dumpRegisters(w io.Writer, r registerReader, last bq25730.Register) error {
	buf := make([]byte, int(last)+1)
	for off := 0; off < len(buf); off += bq25730.MaxTransfer {
		end := min(off+bq25730.MaxTransfer, len(buf))
		if err := r.ReadRegisters(bq25730.Register(off), buf[off:end]); err != nil {
			return fmt.Errorf("read %#02x: %w", off, err)
		}
	}
	for off := 0; off < len(buf); off += 16 {
		end := min(off+16, len(buf))
		fmt.Fprintf(w, "%02x: % x\n", off, buf[off:end])
	}
	return nil
}
