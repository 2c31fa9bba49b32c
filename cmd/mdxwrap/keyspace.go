package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skarn/mdxwrap/internal/input"
)

func newKeyspaceCmd() *cobra.Command {
	var wordlist string

	cmd := &cobra.Command{
		Use:   "keyspace",
		Short: "Print the number of candidates in a wordlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			if wordlist == "" && len(args) == 1 {
				wordlist = args[0]
			}
			if wordlist == "" {
				return fmt.Errorf("--wordlist is required for the keyspace action")
			}
			count, err := input.CountLines(wordlist)
			if err != nil {
				return err
			}
			// The count is the protocol payload of this action; it is the
			// only thing that may go to stdout.
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
	cmd.Flags().StringVarP(&wordlist, "wordlist", "w", "", "Wordlist to count")
	return cmd
}
