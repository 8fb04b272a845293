package cli

import (
	"fmt"
	"io"
)

const banner = "usage: symcrypt [-b] -e|-d -c CIPHER -s FILE [-r FILE] -k KEY"

const arguments = `optional arguments:
  -b                  : specify binary output
  -d                  : decrypt message
  -e                  : encrypt message
  -k KEY              : secret key
  -s FILE             : source file
  -r FILE             : result file
  -c CIPHER           : AES or DES
  -config FILE        : HCL profile with log and output settings
  -log-level LEVEL    : debug, info, warn or error
  -log-format FORMAT  : text or json`

// Usage writes the fixed usage banner and option table to w.
func Usage(w io.Writer) {
	fmt.Fprintf(w, "%s\n\n%s\n", banner, arguments)
}

// Report writes err to w: the message, and for usage errors a blank line
// and the banner.
func Report(w io.Writer, err *ExitError) {
	fmt.Fprintln(w, err.Message)
	if err.ShowUsage {
		fmt.Fprintln(w)
		Usage(w)
	}
}
