package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/strand-protocol/crosslink/cmd/crosslinkctl/pkg/ping"
	"github.com/strand-protocol/crosslink/cmd/crosslinkctl/pkg/tui"
	"github.com/strand-protocol/crosslink/pkg/crosslink"
	"github.com/strand-protocol/crosslink/pkg/frame"
)

var monitorPollInterval time.Duration

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Launch a live terminal dashboard over the configured link",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, err := openConfiguredPort()
		if err != nil {
			return err
		}
		defer closePort(port)

		e := newEngine(port)

		stats := make(chan tui.Stat)
		events := make(chan tui.Event)
		done := make(chan struct{})

		go runMonitorDriver(e, stats, events, done)

		p := tea.NewProgram(tui.New(stats, events, done), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

// runMonitorDriver polls the engine at monitorPollInterval, pushing a
// Stat snapshot and any new Events down the channels until the port's
// read loop can no longer make progress. It never closes stats/events on
// its own since bubbletea owns their lifetime via the done channel.
func runMonitorDriver(e *crosslink.Engine, stats chan tui.Stat, events chan tui.Event, done chan struct{}) {
	defer close(done)

	var s tui.Stat
	ticker := time.NewTicker(monitorPollInterval)
	defer ticker.Stop()

	emit := func(msg string) {
		select {
		case events <- tui.Event{At: time.Now(), Message: msg}:
		default:
		}
	}

	for range ticker.C {
		if _, err := e.Ingest(); err != nil {
			emit(fmt.Sprintf("ingest error: %v", err))
			return
		}

	drain:
		for e.HasObject() {
			var p ping.Ping
			result, err := crosslink.ReadObject(e, ping.Spec, &p)
			if err != nil {
				emit(fmt.Sprintf("read error: %v", err))
				return
			}
			switch result {
			case frame.Success:
				s.ObjectsOK++
				emit(fmt.Sprintf("ping seq=%d message=%q", p.Sequence, p.Message))
			case frame.ObjectIdMismatch:
				s.IDMismatches++
				if e.SkipObject() != frame.Success {
					break drain
				}
			case frame.CrcError:
				s.CrcErrors++
			case frame.ObjectSizeMismatch:
				s.SizeMismatches++
			case frame.NotEnoughData, frame.NoObjectAvailable:
				break drain
			}
		}

		if n := e.Available(); n > 0 {
			buf := make([]byte, n)
			e.Read(buf)
			s.GenericBytes += uint64(n)
		}

		select {
		case stats <- s:
		default:
		}
	}
}

func init() {
	monitorCmd.Flags().DurationVar(&monitorPollInterval, "interval", 50*time.Millisecond, "poll interval")
	rootCmd.AddCommand(monitorCmd)
}
