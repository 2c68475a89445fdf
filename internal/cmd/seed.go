package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/seqscan/internal/display"
	"github.com/backmassage/seqscan/internal/fsdir"
	"github.com/backmassage/seqscan/internal/sequence"
)

func newSeedCommand(a *app) *cobra.Command {
	var withSizes bool

	cmd := &cobra.Command{
		Use:   "seed <file>",
		Short: "Discover the sequence a file belongs to",
		Long: `Take one file as the seed, scan its directory, and print the
sequence it belongs to: the reusable pattern, the friendly frame
summary, and the frame bounds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			abs, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			var sizer fsdir.Sizer
			if withSizes || a.cfg.EstimateSizes {
				sizer = fsdir.OSSizer{}
			}
			seq, err := sequence.Discover(abs, fsdir.OSLister{}, sizer)
			if err != nil {
				return err
			}
			a.log.Debug("seed %s grouped %d files", abs, seq.Count())
			display.PrintSequence(cmd.OutOrStdout(), seq, sizer != nil)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withSizes, "sizes", false, "probe file sizes and print the sequence total")
	return cmd
}
