package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version can be overridden at build time with
// -ldflags "-X main.version=v1.2.3"; otherwise the module version
// recorded by the Go toolchain is used.
var version = ""

func versionCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("atrium %s (%s, %s/%s)\n",
				buildVersion(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
			if !verbose {
				return
			}
			for _, s := range vcsSettings() {
				fmt.Printf("  %s: %s\n", s[0], s[1])
			}
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include VCS build settings")

	return cmd
}

func buildVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "devel"
}

// vcsSettings extracts the VCS facts the toolchain embeds in the binary.
func vcsSettings() [][2]string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	var out [][2]string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision", "vcs.time", "vcs.modified":
			out = append(out, [2]string{s.Key, s.Value})
		}
	}
	return out
}
