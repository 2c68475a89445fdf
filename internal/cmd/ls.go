package cmd

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/seqscan/internal/config"
	"github.com/backmassage/seqscan/internal/display"
	"github.com/backmassage/seqscan/internal/fsdir"
	"github.com/backmassage/seqscan/internal/sequence"
)

func newLsCommand(a *app) *cobra.Command {
	var withSizes bool
	var singles bool

	cmd := &cobra.Command{
		Use:   "ls [directory]",
		Short: "List the file sequences found in a directory",
		Long: `Scan one directory and print every numbered sequence found, one per
line with its frame ranges and file count. Files that belong to no
sequence are hidden unless --singles is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = config.NormalizeDirArg(args[0])
			}

			var sizer fsdir.Sizer
			if withSizes || a.cfg.EstimateSizes {
				sizer = fsdir.OSSizer{}
			}
			seqs, err := sequence.ScanDirectory(dir, fsdir.OSLister{}, sizer)
			if err != nil {
				return err
			}

			kept := seqs[:0]
			for _, s := range seqs {
				if !a.cfg.KeepsExtension(s.FileExtension()) {
					continue
				}
				if s.Count() == 1 && !singles {
					continue
				}
				kept = append(kept, s)
			}
			a.log.Debug("%d entries grouped into %d sequences", countFiles(seqs), len(seqs))

			display.PrintSequences(cmd.OutOrStdout(), kept, sizer != nil)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withSizes, "sizes", false, "probe file sizes and print per-sequence totals")
	cmd.Flags().BoolVar(&singles, "singles", false, "also list files that belong to no sequence")
	return cmd
}

func countFiles(seqs []*sequence.Sequence) int {
	n := 0
	for _, s := range seqs {
		n += s.Count()
	}
	return n
}
