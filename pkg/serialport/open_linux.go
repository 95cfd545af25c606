//go:build linux

package serialport

// Open opens device as a real TTY at the given baud rate. On Linux this
// is OpenTTY; other platforms provide their own Open in open_other.go so
// callers (cmd/crosslinkctl in particular) can stay build-tag-free.
func Open(device string, baud int) (Port, error) {
	return OpenTTY(device, baud)
}
