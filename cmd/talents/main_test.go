package main

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
	"github.com/KirkDiggler/crawl-talents/internal/services/ability"
)

func run(t *testing.T, a *app, args ...string) string {
	t.Helper()
	out := a.out.(*bytes.Buffer)
	out.Reset()

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func newTestApp(t *testing.T, input string) *app {
	t.Setenv("REDIS_URL", "")
	a := newApp(strings.NewReader(input), &bytes.Buffer{})
	t.Cleanup(a.Close)
	return a
}

func TestPresets(t *testing.T) {
	for _, name := range presetNames() {
		t.Run(name, func(t *testing.T) {
			p, err := newPreset(name, "owner", "")
			require.NoError(t, err)
			assert.NotEmpty(t, p.Name)
			assert.Equal(t, 12, p.XL)
		})
	}

	_, err := newPreset("dragon", "owner", "")
	assert.Error(t, err)
}

func TestSpellCommands(t *testing.T) {
	a := newTestApp(t, "")

	out := run(t, a, "spell", "magic", "dart")
	assert.Contains(t, out, "Magic Dart")
	assert.Contains(t, out, "Conjuration")

	out = run(t, a, "spell", "--partial", "dart")
	assert.Contains(t, out, "Magic Dart")

	out = run(t, a, "school", "conj")
	assert.Contains(t, out, "Conjuration")
	assert.Contains(t, out, "Magic Dart")

	out = run(t, a, "range", "magic", "dart", "0")
	assert.Contains(t, out, "Magic Dart at power 0: range")
}

func TestPlayerCommands(t *testing.T) {
	a := newTestApp(t, "")
	ctx := context.Background()

	out := run(t, a, "--seed", "7", "new", "berserker", "--owner", "me")
	assert.Contains(t, out, "Created Grunt the Human")

	mine, err := a.players.ListByOwner(ctx, "me")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	id := mine[0].ID

	out = run(t, a, "list", id)
	assert.Contains(t, out, "Berserk")
	assert.Contains(t, out, "Renounce Religion")

	talents, err := a.service.ListTalents(ctx, &ability.ListTalentsInput{PlayerID: id})
	require.NoError(t, err)
	var berserk rune
	for _, tal := range talents.Talents {
		if tal.Which == abilities.TrogBerserk {
			berserk = tal.Hotkey
		}
	}
	require.NotZero(t, berserk)

	out = run(t, a, "activate", id, string(berserk))
	assert.Contains(t, out, "Berserk: ")

	out = run(t, a, "swap", id, string(berserk), "Z")
	assert.Contains(t, out, "Swapped")

	out = run(t, a, "describe", "--player", id, "berserk")
	assert.Contains(t, out, "Berserk")
	assert.Contains(t, out, "Failure:")
}

func TestShell(t *testing.T) {
	a := newTestApp(t, "new human --owner shell\nbogus\nquit\n")
	out := run(t, a, "shell")

	assert.Contains(t, out, "Created Wanderer the Human")
	assert.Contains(t, out, "Error:")
}

func TestConsole_YesNo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "no", input: "no\n", def: true, want: false},
		{name: "default", input: "\n", def: true, want: true},
		{name: "end of input", input: "", def: false, want: false},
		{name: "asks again", input: "maybe\nyes\n", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := &console{in: bufio.NewReader(strings.NewReader(tt.input)), out: &out}
			assert.Equal(t, tt.want, c.YesNo("Really?", tt.def))
		})
	}
}

func TestConsole_ChooseTarget(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *ability.Target
	}{
		{name: "cancel", input: "\n", want: nil},
		{name: "self", input: ".\n", want: &ability.Target{}},
		{name: "coordinate", input: "2, -1\n", want: &ability.Target{Pos: shared.Coord{X: 2, Y: -1}}},
		{name: "retries out of range", input: "9,9\n1,1\n", want: &ability.Target{Pos: shared.Coord{X: 1, Y: 1}}},
		{name: "retries garbage", input: "left\n0,3\n", want: &ability.Target{Pos: shared.Coord{Y: 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := &console{in: bufio.NewReader(strings.NewReader(tt.input)), out: &out}

			got, err := c.ChooseTarget(context.Background(), ability.TargetRequest{Range: 4, Prompt: "Aim"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConsole_ChooseSpell(t *testing.T) {
	known := []spells.ID{spells.MagicDart, spells.Blink}

	var out bytes.Buffer
	c := &console{in: bufio.NewReader(strings.NewReader("b\nq\n")), out: &out}

	assert.Equal(t, spells.Blink, c.ChooseSpell("Forget which?", known))
	assert.Equal(t, spells.NoSpell, c.ChooseSpell("Forget which?", known))
}

func TestConsole_Apply(t *testing.T) {
	var out bytes.Buffer
	c := &console{out: &out}

	ok, err := c.Apply(context.Background(), &ability.Effect{
		Ability: abilities.MakhlebGreaterServant,
		Power:   56,
		Variant: "balrug",
		Hostile: true,
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "* Greater Servant of Makhleb (balrug) power 56 [hostile]\n", out.String())
}
