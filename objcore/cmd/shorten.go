package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/sarchlab/objcore/naming"
	"github.com/spf13/cobra"
)

var shortenCmd = &cobra.Command{
	Use:   "shorten SHORT...",
	Short: "Resolve the long names of children of an owner.",
	Long: "`shorten --owner app --namespace fields name surname` prints " +
		"the long name that each child gets, then the hash tokens used.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, _ := cmd.Flags().GetString("owner")
		namespace, _ := cmd.Flags().GetString("namespace")

		authority, err := newAuthority()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, short := range args {
			long, err := authority.Resolve(owner, namespace, short, "")
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s -> %s\n", short, long)
		}

		printHashes(out, authority)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(shortenCmd)
	shortenCmd.Flags().String("owner", "app", "Long name of the owner")
	shortenCmd.Flags().String("namespace", "", "Namespace of the children")
}

func printHashes(w io.Writer, authority *naming.Authority) {
	hashes := authority.UniqueHashes()
	if len(hashes) == 0 {
		return
	}

	tokens := make([]string, 0, len(hashes))
	for token := range hashes {
		tokens = append(tokens, token)
	}

	sort.Strings(tokens)

	fmt.Fprintln(w, "hashes:")
	for _, token := range tokens {
		fmt.Fprintf(w, "  %s = %s\n", token, hashes[token])
	}
}
