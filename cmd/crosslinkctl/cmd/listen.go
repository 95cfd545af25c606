package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/strand-protocol/crosslink/cmd/crosslinkctl/pkg/ping"
	"github.com/strand-protocol/crosslink/pkg/crosslink"
	"github.com/strand-protocol/crosslink/pkg/frame"
)

var listenPollInterval time.Duration

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Ingest bytes from the configured link and print decoded Ping objects",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, err := openConfiguredPort()
		if err != nil {
			return err
		}
		defer closePort(port)

		e := newEngine(port)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

		ticker := time.NewTicker(listenPollInterval)
		defer ticker.Stop()

		logger.Info("listening")
		for {
			select {
			case <-sig:
				fmt.Println("\nshutting down...")
				return nil
			case <-ticker.C:
				pollOnce(e)
			}
		}
	},
}

// pollOnce drains one round of traffic: ingest, then drain every decodable
// Ping object, then discard any remaining generic bytes.
func pollOnce(e *crosslink.Engine) {
	if _, err := e.Ingest(); err != nil {
		logger.Sugar().Warnw("ingest error", "error", err)
	}

	for e.HasObject() {
		var p ping.Ping
		result, err := crosslink.ReadObject(e, ping.Spec, &p)
		if err != nil {
			logger.Sugar().Warnw("read error", "error", err)
			break
		}
		switch result {
		case frame.Success:
			fmt.Printf("ping seq=%d message=%q\n", p.Sequence, p.Message)
		case frame.ObjectIdMismatch:
			logger.Sugar().Debugw("skipping unknown object", "id", e.PeekID())
			if e.SkipObject() != frame.Success {
				return
			}
		case frame.CrcError:
			logger.Sugar().Warnw("crc error, frame discarded")
		case frame.ObjectSizeMismatch:
			logger.Sugar().Warnw("object size mismatch, frame discarded")
		case frame.NotEnoughData, frame.NoObjectAvailable:
			return
		}
	}

	if n := e.Available(); n > 0 {
		buf := make([]byte, n)
		e.Read(buf)
		logger.Sugar().Debugw("discarding generic bytes", "count", n)
	}
}

func init() {
	listenCmd.Flags().DurationVar(&listenPollInterval, "interval", 50*time.Millisecond, "poll interval")
	rootCmd.AddCommand(listenCmd)
}
