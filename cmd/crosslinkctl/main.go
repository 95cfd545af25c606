// Command crosslinkctl sends, listens to, and monitors a crosslink serial
// link from the command line.
package main

import "github.com/strand-protocol/crosslink/cmd/crosslinkctl/cmd"

func main() {
	cmd.Execute()
}
