package cost_test

import (
	"testing"

	"github.com/KirkDiggler/crawl-talents/internal/dice"
	mockdice "github.com/KirkDiggler/crawl-talents/internal/dice/mock"
	"github.com/KirkDiggler/crawl-talents/internal/domain/cost"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGeneric_ZeroCostsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)
	// no draws expected

	assert.Equal(t, 0, cost.Generic{}.Cost(roller))
	assert.False(t, cost.Generic{}.Any())
	assert.Equal(t, 0, cost.Approx(0).Cost(roller))
}

func TestGeneric_FixedIgnoresRandomness(t *testing.T) {
	roller := dice.NewSeededRoller(7)
	fixed := cost.Fixed(3)

	for i := 0; i < 1000; i++ {
		assert.Equal(t, 3, fixed.Cost(roller))
	}
	assert.True(t, fixed.Any())
}

func TestGeneric_RangeStaysInBounds(t *testing.T) {
	roller := dice.NewSeededRoller(11)
	r := cost.Range(3, 4)

	assert.Equal(t, cost.Generic{Base: 3, Add: 2, Rolls: 1}, r)

	seen := map[int]int{}
	for i := 0; i < 10000; i++ {
		v := r.Cost(roller)
		assert.Contains(t, []int{3, 4}, v)
		seen[v]++
	}
	assert.Len(t, seen, 2, "both ends of the range should occur")
}

func TestGeneric_CostUsesAveragedDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)

	g := cost.RangeRolls(5, 6, 2)
	roller.EXPECT().Random2Avg(2, 2).Return(1)

	assert.Equal(t, 6, g.Cost(roller))
}

func TestApprox(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want cost.Generic
	}{
		{name: "zero has no surcharge", n: 0, want: cost.Generic{Base: 0, Add: 0, Rolls: 1}},
		{name: "one", n: 1, want: cost.Generic{Base: 1, Add: 2, Rolls: 1}},
		{name: "ten", n: 10, want: cost.Generic{Base: 10, Add: 6, Rolls: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cost.Approx(tt.n))
		})
	}
}

func TestGeneric_Average(t *testing.T) {
	assert.Equal(t, 3, cost.Range(3, 4).Average())
	assert.Equal(t, 13, cost.Approx(10).Average())
	assert.Equal(t, 35, cost.Fixed(35).Average())
}

func TestScaling(t *testing.T) {
	tests := []struct {
		name string
		cost cost.Scaling
		max  int
		want int
	}{
		{name: "zero", cost: cost.Scaling{}, max: 100, want: 0},
		{name: "fixed ignores ceiling", cost: cost.FixedScaling(6), max: 3, want: 6},
		{name: "five percent of 100", cost: cost.PerMille(50), max: 100, want: 5},
		{name: "rounds up", cost: cost.PerMille(50), max: 21, want: 2},
		{name: "fifteen percent of 47", cost: cost.PerMille(150), max: 47, want: 8},
		{name: "whole ceiling", cost: cost.PerMille(1000), max: 33, want: 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cost.Cost(tt.max))
		})
	}
}

func TestScaling_NeverExceedsCeiling(t *testing.T) {
	for v := 1; v <= 1000; v += 37 {
		for m := 0; m < 300; m += 7 {
			c := cost.PerMille(v).Cost(m)
			assert.LessOrEqual(t, c, m)
			assert.Equal(t, (v*m+999)/1000, c)
		}
	}
	assert.False(t, cost.Scaling{}.Any())
	assert.True(t, cost.FixedScaling(1).Any())
}
