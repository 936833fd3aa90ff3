package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
	"github.com/KirkDiggler/crawl-talents/internal/services/ability"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "talents",
		Short: "Inspect and use a player's special abilities",
		Long: `talents manages demo players and runs their abilities: the menu,
hotkeys, failure rolls and costs. Dungeon effects are described, not
performed. Spell lookups work without a player.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.options, "options", "", "game options YAML file (default $TALENTS_OPTIONS_FILE)")
	pf.StringVar(&a.flags.world, "world", "", "YAML snapshot of the player's surroundings")
	pf.StringVar(&a.flags.redisURL, "redis", "", "redis URL for player storage (default $REDIS_URL)")
	pf.BoolVar(&a.flags.memoryRedis, "memory-redis", false, "store players in an embedded redis")
	pf.Int64Var(&a.flags.seed, "seed", 0, "fix the dice (default $TALENTS_SEED)")
	pf.BoolVar(&a.flags.sprint, "sprint", false, "sprint game mode")

	root.AddCommand(
		newPlayerCmd(a),
		listCmd(a),
		activateCmd(a),
		swapCmd(a),
		describeCmd(a),
		spellCmd(a),
		schoolCmd(a),
		rangeCmd(a),
		shellCmd(a),
	)
	return root
}

func newPlayerCmd(a *app) *cobra.Command {
	var name, owner string

	cmd := &cobra.Command{
		Use:       "new <preset>",
		Short:     "Create a player from a preset",
		Long:      "Create a player from a preset. Presets: " + strings.Join(presetNames(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: presetNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPreset(args[0], owner, name)
			if err != nil {
				return err
			}
			if err := a.players.Create(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created %s the %s: %s\n", p.Name, p.Species, p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "player name (default: the preset's)")
	cmd.Flags().StringVar(&owner, "owner", "local", "owner of the new player")
	return cmd
}

func listCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list <player-id>",
		Short: "Show the ability menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.service.ListTalents(cmd.Context(), &ability.ListTalentsInput{
				PlayerID:        args[0],
				IncludeUnusable: all,
			})
			if err != nil {
				return err
			}
			if len(out.Talents) == 0 {
				fmt.Fprintln(a.out, "You have no special abilities.")
				return nil
			}

			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Key\tAbility\tCost\tFailure")
			for _, t := range out.Talents {
				key := "-"
				if t.Hotkey != 0 {
					key = string(t.Hotkey)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d%%\n", key, t.Name, t.Cost, t.Fail)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include abilities that cannot be used right now")
	return cmd
}

func activateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <player-id> <hotkey>",
		Short: "Use the ability on a hotkey",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := hotkeyArg(args[1])
			if err != nil {
				return err
			}
			out, err := a.service.Activate(cmd.Context(), &ability.ActivateInput{PlayerID: args[0], Hotkey: key})
			if err != nil {
				return err
			}

			res := out.Result
			fmt.Fprintf(a.out, "%s: %s", out.Talent.Name, res.Outcome)
			if res.TurnUsed {
				fmt.Fprint(a.out, ", turn over")
			}
			fmt.Fprintln(a.out)
			if p := res.Paid; p != nil {
				fmt.Fprintf(a.out, "Paid: %d MP, %d HP, %d food, %d piety\n", p.MP, p.HP, p.Food, p.Piety)
			}
			return nil
		},
	}
}

func swapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "swap <player-id> <from> <to>",
		Short: "Exchange two ability hotkeys",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := hotkeyArg(args[1])
			if err != nil {
				return err
			}
			to, err := hotkeyArg(args[2])
			if err != nil {
				return err
			}
			if err := a.service.SwapSlots(cmd.Context(), &ability.SwapSlotsInput{
				PlayerID: args[0],
				From:     from,
				To:       to,
			}); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Swapped %c and %c.\n", from, to)
			return nil
		},
	}
}

func describeCmd(a *app) *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "describe <ability name>",
		Short: "Explain an ability's costs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.service.Describe(cmd.Context(), &ability.DescribeInput{
				PlayerID: playerID,
				Name:     strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, out.Name)
			fmt.Fprintln(a.out, out.Detail)
			if t := out.Talent; t != nil {
				fmt.Fprintf(a.out, "Failure: %d%%", t.Fail)
				if t.Hotkey != 0 {
					fmt.Fprintf(a.out, ", on %c", t.Hotkey)
				}
				fmt.Fprintln(a.out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&playerID, "player", "", "show failure and hotkey for this player")
	return cmd
}

func spellCmd(a *app) *cobra.Command {
	var partial bool

	cmd := &cobra.Command{
		Use:   "spell <name>",
		Short: "Look up a spell",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			id := spells.ByName(name, partial)
			def, ok := spells.Get(id)
			if !ok {
				return fmt.Errorf("no spell called %q", name)
			}

			schools := make([]string, 0, 3)
			for _, s := range def.Schools.Split() {
				schools = append(schools, s.LongName())
			}

			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Spell\t%s\n", def.Title)
			fmt.Fprintf(w, "Level\t%d\n", def.Level)
			fmt.Fprintf(w, "Schools\t%s\n", strings.Join(schools, "/"))
			if pc := spells.PowerCap(id); pc > 0 {
				fmt.Fprintf(w, "Power cap\t%d\n", pc)
			}
			fmt.Fprintf(w, "Noise\t%d\n", spells.Noise(id))
			if prompt := spells.TargetPrompt(id); prompt != "" {
				fmt.Fprintf(w, "Prompt\t%s\n", prompt)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&partial, "partial", false, "accept part of a name")
	return cmd
}

func schoolCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "school <name>",
		Short: "List the spells of a school",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			school := spells.SchoolByName(args[0])
			if school == spells.SchoolNone {
				return fmt.Errorf("no school called %q", args[0])
			}

			var titles []string
			for _, id := range spells.All() {
				if spells.Schools(id).Has(school) && spells.IsPlayerSpell(id) {
					titles = append(titles, fmt.Sprintf("%d  %s", spells.Level(id), spells.Title(id)))
				}
			}
			sort.Strings(titles)

			fmt.Fprintf(a.out, "%s (%s)\n", school.LongName(), school.ShortName())
			for _, t := range titles {
				fmt.Fprintln(a.out, "  "+t)
			}
			return nil
		},
	}
}

func rangeCmd(a *app) *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "range <spell> <power>",
		Short: "Work out a spell's range at a power",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			power, err := strconv.Atoi(args[len(args)-1])
			if err != nil {
				return fmt.Errorf("power must be a number: %w", err)
			}
			name := strings.Join(args[:len(args)-1], " ")
			id := spells.ByName(name, true)
			if id == spells.NoSpell {
				return fmt.Errorf("no spell called %q", name)
			}

			caster, err := a.caster(cmd, playerID)
			if err != nil {
				return err
			}
			rng := spells.Range(id, power, true, caster.View(nil))
			if rng < 0 {
				fmt.Fprintf(a.out, "%s is not ranged.\n", spells.Title(id))
				return nil
			}
			fmt.Fprintf(a.out, "%s at power %d: range %d\n", spells.Title(id), power, rng)
			return nil
		},
	}
	cmd.Flags().StringVar(&playerID, "player", "", "cast as this player (default: a fresh human)")
	return cmd
}

// shellCmd reads commands line by line, keeping one app, so in-memory
// players survive between commands.
func shellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(a.out, `Type a command, "help" for the list, or "quit".`)
			for {
				fmt.Fprint(a.out, "> ")
				line, err := a.in.ReadString('\n')
				if err != nil && line == "" {
					fmt.Fprintln(a.out)
					return nil
				}
				args := strings.Fields(line)
				if len(args) == 0 {
					continue
				}
				if args[0] == "quit" || args[0] == "exit" {
					return nil
				}
				if args[0] == "shell" {
					fmt.Fprintln(a.out, "Already in the shell.")
					continue
				}

				sub := newRootCmd(a)
				sub.SetArgs(args)
				sub.SetOut(a.out)
				sub.SetErr(a.out)
				if err := sub.ExecuteContext(cmd.Context()); err != nil {
					fmt.Fprintf(a.out, "Error: %v\n", err)
				}
			}
		},
	}
}

// caster loads playerID, or makes a fresh human when it is empty
func (a *app) caster(cmd *cobra.Command, playerID string) (*player.Player, error) {
	if playerID == "" {
		return player.New("", "", "Caster"), nil
	}
	return a.players.Get(cmd.Context(), playerID)
}

func hotkeyArg(s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("hotkey must be a single letter, got %q", s)
	}
	return r[0], nil
}
