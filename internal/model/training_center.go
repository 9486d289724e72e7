package model

// TrainingCenter is a gym/box where athletes train.
// Its name is unique across all training centers.
type TrainingCenter struct {
	ID      int64
	Name    string
	Address string
	Owner   string
}
