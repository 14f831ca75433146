package cmd

import (
	"fmt"
	"os"

	"github.com/DGHeroin/SysInfo/cmd/probe"
	"github.com/DGHeroin/SysInfo/cmd/server"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "sysinfo",
		Short: "machine status over HTTP",
	}
)

func Run() {
	rootCmd.AddCommand(server.Cmd, probe.Cmd)
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
