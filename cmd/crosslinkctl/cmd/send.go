package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strand-protocol/crosslink/cmd/crosslinkctl/pkg/ping"
	"github.com/strand-protocol/crosslink/pkg/crosslink"
)

var sendSequence uint32

var sendCmd = &cobra.Command{
	Use:   "send <message>",
	Short: "Send one Ping object over the configured link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		port, err := openConfiguredPort()
		if err != nil {
			return err
		}
		defer closePort(port)

		e := newEngine(port)
		p := ping.Ping{Sequence: sendSequence, Message: args[0]}

		result, err := crosslink.SendObject(e, ping.Spec, p)
		if err != nil {
			return fmt.Errorf("send failed: %w", err)
		}
		logger.Sugar().Infow("sent ping", "sequence", p.Sequence, "message", p.Message, "result", result.String())
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
		return nil
	},
}

func init() {
	sendCmd.Flags().Uint32Var(&sendSequence, "sequence", 0, "sequence number to stamp on the Ping")
	rootCmd.AddCommand(sendCmd)
}
