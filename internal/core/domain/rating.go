package domain

type RatingSummary struct {
	ProductID string
	Count     int64
	Sum       int64
}

func (r RatingSummary) Average() float64 {
	if r.Count == 0 {
		return 0
	}
	return float64(r.Sum) / float64(r.Count)
}

// Fold applies a review event to the running summary.
func (r RatingSummary) Fold(e ReviewEvent) RatingSummary {
	r.ProductID = e.Review.ProductID
	rating := int64(e.Review.Rating)
	switch e.Type {
	case ReviewPosted:
		r.Count++
		r.Sum += rating
	case ReviewRevised:
		r.Sum = max(r.Sum+rating-int64(e.PreviousRating), 0)
	case ReviewRemoved:
		if r.Count > 0 {
			r.Count--
			r.Sum = max(r.Sum-rating, 0)
		}
		if r.Count == 0 {
			r.Sum = 0
		}
	}
	return r
}
