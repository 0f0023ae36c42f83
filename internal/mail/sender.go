package mail

import (
	"fmt"
	"io"
)

// Sender delivers a downloaded ebook file to an email address.
type Sender interface {
	Send(address, attachmentPath string) error
}

// LogSender acknowledges sends on the given writer without performing
// real delivery. Actual SMTP transport lives outside this program.
type LogSender struct {
	Out io.Writer
}

// Send writes a delivery acknowledgement line.
func (s LogSender) Send(address, attachmentPath string) error {
	_, err := fmt.Fprintf(s.Out, "Queued %s for delivery to %s\n", attachmentPath, address)
	return err
}
