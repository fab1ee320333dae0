package integrate

// Serial evaluates rule with n intervals in a single loop.
func Serial(rule Rule, n int) (float64, error) {
	g, err := NewGrid(rule, n)
	if err != nil {
		return 0, err
	}

	sum := Boundary(rule, g)
	sum += PartialSum(rule, g, 0, InteriorNodes(rule, g), 1)
	return sum * Scale(rule, g), nil
}
