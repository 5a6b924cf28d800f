package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/citator/internal/cite"
)

func citeCmd() *cobra.Command {
	var (
		sceneID string
		asJSON  bool
		asHTML  bool
	)

	cmd := &cobra.Command{
		Use:   "cite [TEXT...]",
		Short: "Locate copied text in a scene and print its citation",
		Long: "Locate copied text in a scene and print its citation. The text is\n" +
			"taken from the arguments, or from stdin when none are given.\n" +
			"Text that cannot be located is cited without line numbers.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlay()
			if err != nil {
				return err
			}
			scene, err := p.Scene(sceneID)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimRight(string(data), "\r\n")
			}

			c := cite.For(text, scene)
			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				resp := map[string]any{"found": c.Found, "scene": scene.ID(), "citation": c.String()}
				if c.Found {
					resp["first_line"] = c.Lines.First
					resp["last_line"] = c.Lines.Last
				}
				return json.NewEncoder(out).Encode(resp)
			case asHTML:
				fmt.Fprintln(out, c.HTML())
			default:
				fmt.Fprintln(out, c.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sceneID, "scene", "s", "", "scene id, e.g. 3.1")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&asHTML, "html", false, "print the rich-text clipboard form")
	_ = cmd.MarkFlagRequired("scene")
	cmd.MarkFlagsMutuallyExclusive("json", "html")
	return cmd
}
