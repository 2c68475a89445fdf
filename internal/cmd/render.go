package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/backmassage/seqscan/internal/pattern"
)

func newRenderCommand(a *app) *cobra.Command {
	var view int

	cmd := &cobra.Command{
		Use:   "render <pattern> <frame>",
		Short: "Render the concrete filename for one frame of a pattern",
		Long: `Substitute every variable of a pattern with its concrete value:
"seqscan render file.####.jpg 7" prints "file.0007.jpg". View fields
render per --view (0 = l/left, 1 = r/right, N = viewN).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid frame number %q", args[1])
			}
			out, err := pattern.RenderFileName(args[0], frame, view)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&view, "view", -1, "view index to render")
	return cmd
}
