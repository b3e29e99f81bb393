package model

// Encoder is a fixed categorical vocabulary mapping class values to their
// integer codes (the class's position in the training-time ordering).
type Encoder struct {
	classes []string
	index   map[string]int
}

func NewEncoder(classes []string) *Encoder {
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	return &Encoder{classes: classes, index: index}
}

func (e *Encoder) Contains(value string) bool {
	_, ok := e.index[value]
	return ok
}

func (e *Encoder) Transform(value string) (int, bool) {
	code, ok := e.index[value]
	return code, ok
}

// Len returns the vocabulary size.
func (e *Encoder) Len() int {
	return len(e.classes)
}
