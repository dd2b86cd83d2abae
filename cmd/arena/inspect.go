package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/udisondev/tussle/internal/game/character"
	"github.com/udisondev/tussle/internal/roster"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [roster]",
	Short: "Print the derived stats and equipment of every roster character",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Roster
		if len(args) == 1 {
			path = args[0]
		}
		rs, err := roster.Load(path, cfg.EquipmentCap)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "roster %s (%s)\n", path, rs.Fingerprint[:12])
		for _, c := range rs.Characters {
			printCharacter(out, c)
		}
		return nil
	},
}

func printCharacter(w io.Writer, c *character.Character) {
	s := c.CurrentStats()
	gs := c.GameStats()

	fmt.Fprintf(w, "\n%s [%s]", c.Name(), c.Party())
	if c.Owner() != "" {
		fmt.Fprintf(w, " played by %s", c.Owner())
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  DEX %d  STR %d  GRT %d  WIL %d  CHA %d  INT %d\n", s.DEX, s.STR, s.GRT, s.WIL, s.CHA, s.INT)
	fmt.Fprintf(w, "  HP %d/%d (+%d)  MP %d/%d (+%d)  AP %d/%d (+%d)  VIT %d\n",
		c.HP(), gs.MHP, gs.HRG, c.MP(), gs.MMP, gs.MRG, c.AP(), gs.MAP, gs.TAP, c.VIT())
	fmt.Fprintf(w, "  PDF %d  MDF %d  MOB %d\n", gs.PDF, gs.MDF, gs.MOB)

	for _, eq := range c.Equipment() {
		fmt.Fprintf(w, "  %s", eq)
		if req := eq.Requirements().RequirementString(); req != "" {
			fmt.Fprintf(w, " (needs %s)", req)
		}
		fmt.Fprintln(w)

		var grants []string
		for _, e := range eq.Effects() {
			grants = append(grants, e.Describe())
		}
		for _, m := range eq.Maneuvers() {
			grants = append(grants, fmt.Sprintf("%s (%d MP)", m.Name(), m.MPCost()))
		}
		for _, r := range eq.Reactions() {
			grants = append(grants, fmt.Sprintf("%s (%d AP, %d MP)", r.Describe(), r.APCost(), r.MPCost()))
		}
		if len(grants) > 0 {
			fmt.Fprintf(w, "    %s\n", strings.Join(grants, "; "))
		}
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
