package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
)

func newUnitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the supported units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SYMBOL\tNAME")
			for _, u := range timedata.Units() {
				fmt.Fprintf(w, "%s\t%s\n", u, u.Name())
			}
			return w.Flush()
		},
	}
}
