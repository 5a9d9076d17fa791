package domain

type Answer struct {
	Puzzle string
	Parts  []Part
}

func NewAnswer(puzzle string, parts ...Part) Answer {
	return Answer{
		Puzzle: puzzle,
		Parts:  parts,
	}
}

type Part struct {
	Name  string
	Value int
}

func NewPart(name string, value int) Part {
	return Part{
		Name:  name,
		Value: value,
	}
}
