package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
	"github.com/KirkDiggler/crawl-talents/internal/events"
	"github.com/KirkDiggler/crawl-talents/internal/logger"
	"github.com/KirkDiggler/crawl-talents/internal/services/ability"
)

// console is the terminal side of the engine: it prints game text, asks
// questions on stdin and reports dungeon effects instead of performing
// them.
type console struct {
	in  *bufio.Reader
	out io.Writer
}

var (
	_ ability.Messenger = (*console)(nil)
	_ ability.Prompter  = (*console)(nil)
	_ ability.Targeter  = (*console)(nil)
	_ ability.Effector  = (*console)(nil)
)

func (c *console) Say(msg string) {
	fmt.Fprintln(c.out, msg)
}

// readLine returns the next trimmed line; ok is false at end of input
func (c *console) readLine() (string, bool) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (c *console) YesNo(prompt string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(c.out, "%s (%s) ", prompt, hint)
		line, ok := c.readLine()
		if !ok {
			fmt.Fprintln(c.out)
			return def
		}
		switch strings.ToLower(line) {
		case "":
			return def
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Fprintln(c.out, "Please answer y or n.")
	}
}

func (c *console) ChooseSpell(prompt string, known []spells.ID) spells.ID {
	for i, id := range known {
		fmt.Fprintf(c.out, "  %c - %s\n", player.IndexToLetter(i), spells.Title(id))
	}
	fmt.Fprintf(c.out, "%s ", prompt)

	line, ok := c.readLine()
	if !ok || len(line) != 1 {
		return spells.NoSpell
	}
	i := player.LetterToIndex(rune(line[0]))
	if i < 0 || i >= len(known) {
		return spells.NoSpell
	}
	return known[i]
}

// ChooseTarget reads "x,y" relative to the player. An empty line cancels
// and "." aims at the player.
func (c *console) ChooseTarget(_ context.Context, req ability.TargetRequest) (*ability.Target, error) {
	for {
		fmt.Fprintf(c.out, "%s (range %d, x,y or . for self, empty to cancel): ", req.Prompt, req.Range)
		line, ok := c.readLine()
		if !ok || line == "" {
			return nil, nil
		}
		if line == "." {
			return &ability.Target{}, nil
		}

		pos, err := parseCoord(line)
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}
		if d := (shared.Coord{}).Distance(pos); d > req.Range {
			fmt.Fprintf(c.out, "That is %d away; the range is %d.\n", d, req.Range)
			continue
		}
		return &ability.Target{Pos: pos}, nil
	}
}

func parseCoord(s string) (shared.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return shared.Coord{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return shared.Coord{}, fmt.Errorf("bad x %q", parts[0])
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return shared.Coord{}, fmt.Errorf("bad y %q", parts[1])
	}
	return shared.Coord{X: x, Y: y}, nil
}

// Apply describes the effect. There is no dungeon here, so every effect
// happens.
func (c *console) Apply(_ context.Context, eff *ability.Effect) (bool, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "* %s", abilities.Name(eff.Ability))
	if eff.Variant != "" {
		fmt.Fprintf(&b, " (%s)", eff.Variant)
	}
	if eff.Power > 0 {
		fmt.Fprintf(&b, " power %d", eff.Power)
	}
	if eff.Target != nil {
		fmt.Fprintf(&b, " at %d,%d", eff.Target.Pos.X, eff.Target.Pos.Y)
	}
	if eff.Hostile {
		b.WriteString(" [hostile]")
	}
	fmt.Fprintln(c.out, b.String())
	return true, nil
}

// activationLog writes every finished activation to the structured log
type activationLog struct{}

func (activationLog) ID() string    { return "activation-log" }
func (activationLog) Priority() int { return events.PriorityLogging }

func (activationLog) HandleEvent(e events.Event) error {
	done, ok := e.(*events.AfterActivationEvent)
	if !ok {
		return nil
	}
	logger.Info("activation finished",
		"player", done.GetActor().ID,
		"ability", abilities.Name(done.Ability),
		"activation", done.ActivationID,
		"outcome", done.Outcome,
		"turn_used", done.TurnUsed)
	return nil
}
