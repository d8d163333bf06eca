package problemgen

// GenerateOptions returns four distinct positive integers containing
// the correct answer, shuffled. Dummies cluster near the answer; when
// the answer is small enough that the offset window cannot yield three
// distinct positive values fast enough, the window widens until it can.
func (g *Generator) GenerateOptions(correctAnswer int) []int {
	options := []int{correctAnswer}
	used := map[int]bool{correctAnswer: true}

	window := g.cfg.OptionOffset
	attempts := 0
	for len(options) < 4 {
		offset := g.rng.Intn(window*2+1) - window
		dummy := correctAnswer + offset
		if dummy > 0 && !used[dummy] {
			options = append(options, dummy)
			used[dummy] = true
			continue
		}
		attempts++
		if attempts >= g.cfg.OptionRetryCap {
			// Widen the window rather than loop forever on tiny answers.
			window *= 2
			attempts = 0
		}
	}

	g.shuffle(options)
	return options
}

// shuffle is a Fisher-Yates shuffle using the generator's RNG.
func (g *Generator) shuffle(values []int) {
	for i := len(values) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}
