/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package issuer-rest runs the VC-API credential issuer.
package main

import (
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/laysakura/vc-issuer-mock/cmd/issuer-rest/genkeyscmd"
	"github.com/laysakura/vc-issuer-mock/cmd/issuer-rest/startcmd"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version string

var logger = log.New("issuer-rest")

func main() {
	rootCmd := &cobra.Command{
		Use: "issuer-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(startcmd.WithVersion(Version)))
	rootCmd.AddCommand(genkeyscmd.GetGenKeysCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run issuer-rest", log.WithError(err))
	}
}
