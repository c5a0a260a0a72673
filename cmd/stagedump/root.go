package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smbworkshop/stagedef"
)

func newRootCommand() *cobra.Command {
	var (
		gameFlag     string
		littleEndian bool
		verbose      bool
	)

	rootCmd := &cobra.Command{
		Use:   "stagedump <file>",
		Short: "Decode a stage definition file and print a summary",
		Long: `Decode an uncompressed stage definition file and print a summary of
its contents: magic numbers, start position, the global object lists,
and every collision header with shared-vs-embedded provenance for its
local lists.

Compressed .lz containers are not supported; decompress them first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := parseGame(gameFlag)
			if err != nil {
				return err
			}

			var order binary.ByteOrder = binary.BigEndian
			if littleEndian {
				order = binary.LittleEndian
			}

			if verbose {
				log, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer log.Sync()
				stagedef.SetLogger(log)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			sd, err := stagedef.Decode(data, game, order)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			printReport(cmd.OutOrStdout(), args[0], sd)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&gameFlag, "game", "smb2", "Game variant (smb1|smb2|smbdx)")
	rootCmd.Flags().BoolVar(&littleEndian, "little-endian", false, "Decode as little-endian (default is big-endian)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log decode diagnostics to stderr")

	return rootCmd
}

func parseGame(s string) (stagedef.Game, error) {
	switch strings.ToLower(s) {
	case "smb1":
		return stagedef.GameSMB1, nil
	case "smb2":
		return stagedef.GameSMB2, nil
	case "smbdx":
		return stagedef.GameSMBDX, nil
	default:
		return 0, fmt.Errorf("unknown game variant %q (want smb1, smb2, or smbdx)", s)
	}
}
