package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strand-protocol/crosslink/cmd/crosslinkctl/pkg/config"
	"github.com/strand-protocol/crosslink/pkg/crosslink"
	"github.com/strand-protocol/crosslink/pkg/serialport"
)

var (
	// Global flags
	cfgFile    string
	deviceFlag string
	baudFlag   int

	// Shared state set during PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger

	// portFactory opens the configured device; overridden in tests to
	// inject an in-memory LoopPipe instead of a real TTY.
	portFactory = serialport.Open
)

// rootCmd is the base command for crosslinkctl.
var rootCmd = &cobra.Command{
	Use:   "crosslinkctl",
	Short: "crosslinkctl — send, listen to, and monitor a crosslink serial link",
	Long: `crosslinkctl is the operator-facing driver for the crosslink framing
engine. It opens a serial device (or, for testing, an in-memory pipe),
wires up a crosslink.Engine, and exposes send/listen/monitor operations
around it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if deviceFlag != "" {
			cfg.Device = deviceFlag
		}
		if baudFlag != 0 {
			cfg.Baud = baudFlag
		}

		l, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// SetPortFactory allows tests to inject a fake port instead of opening a
// real device.
func SetPortFactory(f func(device string, baud int) (serialport.Port, error)) {
	portFactory = f
}

// RootCmd returns the root cobra.Command, for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}

// openConfiguredPort opens cfg.Device via portFactory, failing loudly if
// no device has been configured.
func openConfiguredPort() (serialport.Port, error) {
	if cfg.Device == "" {
		return nil, fmt.Errorf("no device configured; pass --device or set \"device\" in the config file")
	}
	return portFactory(cfg.Device, cfg.Baud)
}

// closePort closes port if it implements io.Closer. serialport.Port
// itself carries no Close method (spec §6's minimal Available/Read/Write
// contract), but concrete adapters like TTYPort do.
func closePort(port serialport.Port) {
	if c, ok := port.(io.Closer); ok {
		c.Close()
	}
}

// newEngine builds a crosslink.Engine over port using the loaded config's
// buffer settings.
func newEngine(port serialport.Port) *crosslink.Engine {
	return crosslink.NewEngine(port,
		crosslink.WithBufferCapacity(cfg.RingCapacity),
		crosslink.WithScratchCapacity(cfg.ScratchCapacity),
		crosslink.WithOverwrite(cfg.Overwrite),
	)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.crosslink/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&deviceFlag, "device", "", "serial device path, e.g. /dev/ttyUSB0")
	rootCmd.PersistentFlags().IntVar(&baudFlag, "baud", 0, "baud rate (overrides config)")
}
