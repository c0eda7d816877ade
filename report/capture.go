package report

import (
	"github.com/getsentry/raven-go"
)

var (
	packagePrefixes = []string{"github.com/go-imsto"}
)

// SetupCapture enables error capture when dsn is not empty
func SetupCapture(dsn string, tags map[string]string) error {
	if dsn == "" {
		return nil
	}
	if err := raven.SetDSN(dsn); err != nil {
		return err
	}
	raven.SetTagsContext(tags)
	return nil
}

// CaptureError sends err to sentry and waits for delivery, a no-op
// unless SetupCapture was given a dsn.
func CaptureError(err error, tags map[string]string) {
	if err == nil || raven.URL() == "" {
		return
	}
	var packet *raven.Packet
	packet = raven.NewPacket(err.Error(),
		raven.NewException(err, raven.NewStacktrace(1, 3, packagePrefixes)))

	_, ch := raven.Capture(packet, tags)
	if ch != nil {
		<-ch
	}
}
