package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/citator/internal/play"
)

var playPath string

// NewRootCmd builds the citator command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "citator",
		Short:         "Cite quotations from a play by act, scene and line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&playPath, "play", "", "path to the play's JSON encoding")
	_ = root.MarkPersistentFlagRequired("play")

	root.AddCommand(outlineCmd(), citeCmd())
	return root
}

func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

func loadPlay() (*play.Play, error) {
	f, err := os.Open(playPath)
	if err != nil {
		return nil, fmt.Errorf("open play: %w", err)
	}
	defer f.Close()

	p, err := play.Decode(f)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid play %s: %w", playPath, err)
	}
	return p, nil
}
