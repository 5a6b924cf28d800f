package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func outlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline",
		Short: "List acts and scenes with their ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlay()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.Title)
			for _, a := range p.Acts {
				fmt.Fprintf(out, "Act %3d\n", a.Number)
				for _, s := range a.Scenes {
					fmt.Fprintf(out, "  %-6s %s (%d lines)\n", s.ID(), s.Title, len(s.Lines))
				}
			}
			return nil
		},
	}
}
