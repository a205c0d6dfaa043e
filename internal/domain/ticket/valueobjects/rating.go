package valueobjects

import "fmt"

// Rating is the 1-5 satisfaction score a customer leaves on a resolved ticket.
type Rating int

const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

func (r Rating) Int() int {
	return int(r)
}

func (r Rating) IsValid() bool {
	return r >= MinRating && r <= MaxRating
}

func NewRating(value int) (Rating, error) {
	r := Rating(value)
	if !r.IsValid() {
		return 0, fmt.Errorf("rating must be between %d and %d, got %d", MinRating, MaxRating, value)
	}
	return r, nil
}
