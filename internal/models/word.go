package models

// VocabPair is a single vocabulary entry: the Polish term and its English
// translation.
type VocabPair struct {
	Term        string
	Translation string
}

type ProgressReport struct {
	Stats     UserStats
	Accuracy  float64
	VocabSize int
}
