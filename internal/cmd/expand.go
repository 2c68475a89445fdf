package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/seqscan/internal/fsdir"
	"github.com/backmassage/seqscan/internal/pattern"
)

func newExpandCommand(a *app) *cobra.Command {
	var onlyView int

	cmd := &cobra.Command{
		Use:   "expand <pattern>",
		Short: "Expand a pattern into the files it designates",
		Long: `Compile a pattern (e.g. "/renders/shot_####.png"), list its
directory, and print every matching file in frame order. With --view,
only files of that view index are printed; files without a view always
pass the filter.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := pattern.ListFiles(args[0], fsdir.OSLister{})
			if err != nil {
				return err
			}
			files := pattern.Flatten(seq, onlyView)
			a.log.Debug("pattern %q matched %d files", args[0], len(files))
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&onlyView, "view", -1, "only print files of this view index")
	return cmd
}
