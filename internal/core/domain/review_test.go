package domain_test

import (
	"strconv"
	"testing"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewValidateRating(t *testing.T) {
	tests := []struct {
		rating int
		valid  bool
	}{
		{-1, false},
		{0, false},
		{1, true},
		{3, true},
		{5, true},
		{6, false},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.rating), func(t *testing.T) {
			r := domain.Review{ProductID: "p1", CustomerID: "c1", Rating: tt.rating}
			err := r.Validate()
			if tt.valid {
				require.NoError(t, err)
				return
			}
			var vErr domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "rating", vErr.Field)
		})
	}
}

func TestReviewPatchApply(t *testing.T) {
	before := domain.Review{
		ID: "r1", ProductID: "p1", CustomerID: "c1", Rating: 4, Comment: "fine",
	}
	comment := "Great shirt, very comfortable!"

	after := domain.ReviewPatch{Comment: &comment}.Apply(before)

	assert.Equal(t, comment, after.Comment)
	assert.Equal(t, before.Rating, after.Rating)
	assert.Equal(t, before.ProductID, after.ProductID)
}

func TestRatingSummaryFold(t *testing.T) {
	review := func(rating int) domain.Review {
		return domain.Review{ProductID: "p1", Rating: rating}
	}

	var s domain.RatingSummary
	s = s.Fold(domain.ReviewEvent{Type: domain.ReviewPosted, Review: review(5)})
	s = s.Fold(domain.ReviewEvent{Type: domain.ReviewPosted, Review: review(4)})
	assert.Equal(t, int64(2), s.Count)
	assert.InDelta(t, 4.5, s.Average(), 1e-9)

	s = s.Fold(domain.ReviewEvent{
		Type: domain.ReviewRevised, Review: review(2), PreviousRating: 4,
	})
	assert.Equal(t, int64(7), s.Sum)

	s = s.Fold(domain.ReviewEvent{Type: domain.ReviewRemoved, Review: review(5)})
	assert.Equal(t, int64(1), s.Count)
	assert.InDelta(t, 2.0, s.Average(), 1e-9)
	assert.Equal(t, "p1", s.ProductID)

	assert.Zero(t, domain.RatingSummary{}.Average())
}

func TestRatingSummaryFoldRepeatedRemoval(t *testing.T) {
	removed := domain.ReviewEvent{
		Type:   domain.ReviewRemoved,
		Review: domain.Review{ProductID: "p1", Rating: 5},
	}

	s := domain.RatingSummary{ProductID: "p1", Count: 2, Sum: 3}
	s = s.Fold(removed)
	assert.Equal(t, int64(1), s.Count)
	assert.Zero(t, s.Sum)

	s = s.Fold(removed)
	s = s.Fold(removed)
	assert.Zero(t, s.Count)
	assert.Zero(t, s.Sum)
	assert.Zero(t, s.Average())
}
