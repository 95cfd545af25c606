//go:build linux

package serialport

import (
	"errors"
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// baudRates maps the handful of baud rates crosslink links commonly use to
// the termios speed_t constants. Unlisted rates fail closed rather than
// silently rounding to the nearest supported one.
var baudRates = map[int]uint32{
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
	230400: unix.B230400,
}

// TTYPort is a Port backed by a Linux TTY device node, configured for raw,
// 8N1, non-canonical, non-blocking operation. It is a thin, best-effort
// adapter -- not a cross-platform serial driver -- matching the
// "platform-specific serial driver" that spec.md keeps out of the core's
// scope; crosslink.Engine never imports this package directly, it only
// depends on the Port interface.
type TTYPort struct {
	f *os.File
}

// OpenTTY opens the device node at path and configures it for raw,
// non-blocking I/O at the given baud rate.
func OpenTTY(path string, baud int) (*TTYPort, error) {
	speed, ok := baudRates[baud]
	if !ok {
		return nil, fmt.Errorf("serialport: unsupported baud rate %d", baud)
	}

	f, err := os.OpenFile(path, os.O_RDWR|unix.O_NOCTTY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "serialport: open %s", path)
	}

	fd := int(f.Fd())
	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		f.Close()
		return nil, pkgerrors.Wrapf(err, "serialport: get termios for %s", path)
	}

	// Raw mode: no line discipline processing, no echo, no signal
	// generation, 8 data bits, no parity, 1 stop bit.
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB
	t.Cflag |= unix.CS8
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 0
	t.Ispeed = speed
	t.Ospeed = speed

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, t); err != nil {
		f.Close()
		return nil, pkgerrors.Wrapf(err, "serialport: set termios for %s", path)
	}

	return &TTYPort{f: f}, nil
}

// Available reports the number of bytes currently queued in the kernel's
// input buffer for this device (TIOCINQ / FIONREAD).
func (p *TTYPort) Available() int {
	n, err := unix.IoctlGetInt(int(p.f.Fd()), unix.TIOCINQ)
	if err != nil {
		return 0
	}
	return n
}

// Read performs a non-blocking read, relying on the O_NONBLOCK flag set at
// open time: an EAGAIN from the kernel surfaces as (0, nil), matching the
// Port contract that Read never blocks.
func (p *TTYPort) Read(dst []byte) (int, error) {
	n, err := p.f.Read(dst)
	if errors.Is(err, unix.EAGAIN) {
		return 0, nil
	}
	return n, err
}

// Write attempts to write all of src in one call. A short write (rare on
// a character device, but possible under load) is reported as failure
// rather than silently partial, per the Port contract's all-or-nothing
// semantics.
func (p *TTYPort) Write(src []byte) (bool, error) {
	n, err := p.f.Write(src)
	if err != nil {
		return false, pkgerrors.Wrap(err, "serialport: tty write")
	}
	return n == len(src), nil
}

// Close releases the underlying device node.
func (p *TTYPort) Close() error {
	return p.f.Close()
}
