package container

// MaxArea returns the largest area two walls can hold, using the
// two-pointer sweep.
func MaxArea(height []int, opts ...Option) int {
	return sweep(height, opts...).Area
}

// Optimal returns the walls of the first largest container found by the
// sweep. Fewer than two walls yield the zero Container.
func Optimal(height []int) Container {
	return sweep(height)
}

func sweep(height []int, opts ...Option) Container {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var best Container
	left, right := 0, len(height)-1
	for left < right {
		width := right - left
		h := min(height[left], height[right])
		area := width * h

		step := Step{Left: left, Right: right, Width: width, Height: h, Area: area}
		if area > best.Area {
			best = Container{Left: left, Right: right, Area: area}
			step.Improved = true
		}
		step.Best = best.Area
		step.MovedLeft = height[left] < height[right]
		o.OnStep(step)

		if step.MovedLeft {
			left++
		} else {
			right--
		}
	}

	return best
}

// BruteForce tries every pair of walls.
func BruteForce(height []int) int {
	best := 0
	for i := range height {
		for j := i + 1; j < len(height); j++ {
			best = max(best, (j-i)*min(height[i], height[j]))
		}
	}

	return best
}

// OptimizedBruteForce scans, for each left wall i, the right walls from the
// far end inward. Once wall i is the limiting height, every closer j gives a
// narrower container no taller than h[i], so the scan for i stops there.
func OptimizedBruteForce(height []int) int {
	best := 0
	for i := range height {
		for j := len(height) - 1; j > i; j-- {
			h := min(height[i], height[j])
			best = max(best, (j-i)*h)
			if h == height[i] {
				break
			}
		}
	}

	return best
}
