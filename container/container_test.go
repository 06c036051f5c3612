package container_test

import (
	"math"
	"testing"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twopointers/container"
)

// TestMaxArea_Scenarios checks all strategies on known inputs.
func TestMaxArea_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		height []int
		want   int
	}{
		{"classic", []int{1, 8, 6, 2, 5, 4, 8, 3, 7}, 49},
		{"two walls", []int{1, 1}, 1},
		{"tall middle", []int{4, 3, 2, 1, 4}, 16},
		{"increasing", []int{1, 2, 3, 4, 5}, 6},
		{"flat", []int{2, 2, 2, 2}, 6},
		{"zeros", []int{0, 0, 0}, 0},
		{"single", []int{5}, 0},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, container.MaxArea(tc.height), "MaxArea")
			assert.Equal(t, tc.want, container.BruteForce(tc.height), "BruteForce")
			assert.Equal(t, tc.want, container.OptimizedBruteForce(tc.height), "OptimizedBruteForce")
			assert.Equal(t, tc.want, container.Optimal(tc.height).Area, "Optimal")
		})
	}
}

// TestMaxArea_AgreesWithBruteForce cross-checks random inputs.
func TestMaxArea_AgreesWithBruteForce(t *testing.T) {
	for round := 0; round < 300; round++ {
		height := make([]int, randomdata.Number(0, 30))
		for i := range height {
			height[i] = randomdata.Number(0, 20)
		}
		want := container.BruteForce(height)
		require.Equal(t, want, container.MaxArea(height), "height=%v", height)
		require.Equal(t, want, container.OptimizedBruteForce(height), "height=%v", height)

		opt := container.Optimal(height)
		require.Equal(t, want, opt.Area, "height=%v", height)
		if opt.Area > 0 {
			w := opt.Right - opt.Left
			assert.Equal(t, opt.Area, w*min(height[opt.Left], height[opt.Right]))
		}
	}
}

// TestOptimal_Walls checks the reported wall indices.
func TestOptimal_Walls(t *testing.T) {
	assert.Equal(t, container.Container{Left: 1, Right: 8, Area: 49},
		container.Optimal([]int{1, 8, 6, 2, 5, 4, 8, 3, 7}))
	assert.Equal(t, container.Container{}, container.Optimal([]int{7}))
	assert.Equal(t, container.Container{}, container.Optimal([]int{0, 0}))
}

// TestMaxArea_Trace checks the per-iteration steps.
func TestMaxArea_Trace(t *testing.T) {
	var steps []container.Step
	area := container.MaxArea([]int{1, 3, 2}, container.WithTrace(func(s container.Step) {
		steps = append(steps, s)
	}))
	assert.Equal(t, 2, area)

	want := []container.Step{
		{Left: 0, Right: 2, Width: 2, Height: 1, Area: 2, Best: 2, Improved: true, MovedLeft: true},
		{Left: 1, Right: 2, Width: 1, Height: 2, Area: 2, Best: 2, Improved: false, MovedLeft: false},
	}
	assert.Equal(t, want, steps)
}

// TestValidate reports the first negative wall.
func TestValidate(t *testing.T) {
	assert.NoError(t, container.Validate([]int{0, 1, 2}))
	assert.NoError(t, container.Validate(nil))

	err := container.Validate([]int{1, -2, -3})
	require.ErrorIs(t, err, container.ErrNegativeHeight)
	assert.Contains(t, err.Error(), "height[1] = -2")
}

// TestValidate_AreaOverflow rejects heights whose area could exceed MaxInt.
func TestValidate_AreaOverflow(t *testing.T) {
	assert.NoError(t, container.Validate([]int{math.MaxInt}), "one wall holds no water")
	assert.NoError(t, container.Validate([]int{math.MaxInt, math.MaxInt}))
	assert.NoError(t, container.Validate([]int{math.MaxInt / 2, 1, math.MaxInt / 2}))

	err := container.Validate([]int{1, math.MaxInt, 1})
	require.ErrorIs(t, err, container.ErrAreaOverflow)
	assert.Contains(t, err.Error(), "height[1]")

	height := []int{math.MaxInt / 2, 0, math.MaxInt / 2}
	require.NoError(t, container.Validate(height))
	assert.Equal(t, math.MaxInt/2*2, container.MaxArea(height))
	assert.Equal(t, container.BruteForce(height), container.MaxArea(height))
}

// TestRender draws the optimal container with water between its walls.
func TestRender(t *testing.T) {
	want := "" +
		" 3 |~~|\n" +
		" 2 |~#|\n" +
		" 1 |##|\n" +
		"   0123\n"
	assert.Equal(t, want, container.Render([]int{3, 1, 2, 3}))
}

// TestRender_Degenerate covers inputs without water.
func TestRender_Degenerate(t *testing.T) {
	assert.Equal(t, "", container.Render(nil))
	assert.Equal(t, " 2 #\n 1 #\n   0\n", container.Render([]int{2}))
	assert.Equal(t, "   01\n", container.Render([]int{0, 0}))
}
