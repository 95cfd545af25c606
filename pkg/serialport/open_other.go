//go:build !linux

package serialport

import (
	"fmt"
	"runtime"
)

// Open reports that no real TTY adapter exists for this platform. Use
// LoopPipe for local testing on non-Linux hosts.
func Open(device string, baud int) (Port, error) {
	return nil, fmt.Errorf("serialport: no TTY adapter for GOOS=%s (device %q)", runtime.GOOS, device)
}
