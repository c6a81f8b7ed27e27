package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// newPaletteCmd creates the palette command. It lists the effective colour
// palette: built-in defaults merged with the user file.
func newPaletteCmd() *cobra.Command {
	var palettePath string

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the effective colour palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, err := loadPalette(palettePath)
			if err != nil {
				return err
			}

			names := pal.Names()
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				c, _ := pal.Lookup(name)
				rows = append(rows, []string{name, c.String()})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Name", "k,r,g,b").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					if col == 0 {
						return StyleHighlight
					}
					return StyleValue
				})

			fmt.Println(t.Render())
			printDetail("%d colours", len(names))
			return nil
		},
	}

	cmd.Flags().StringVar(&palettePath, "palette", "", "palette file (default ~/.config/drawkit/palette.toml)")

	return cmd
}
