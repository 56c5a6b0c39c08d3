package service_test

import (
	"testing"

	"github.com/niksmo/emporium/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPostReview(t *testing.T) {
	product := domain.Product{ID: "p1", Name: "T-Shirt", SKU: "TS-1"}
	customer := domain.Customer{ID: "c1", Email: "ann@example.com"}

	review := func(rating int) domain.Review {
		return domain.Review{
			ProductID: "p1", CustomerID: "c1", Rating: rating, Comment: "ok",
		}
	}

	for _, rating := range []int{1, 5} {
		d := newDeps()
		d.products.On("ReadProduct", mock.Anything, "p1").Return(product, nil)
		d.customers.On("ReadCustomer", mock.Anything, "c1").Return(customer, nil)
		d.reviews.On("CreateReview", mock.Anything, review(rating)).
			Return(domain.Review{ID: "r1", ProductID: "p1", Rating: rating}, nil)
		d.reviewEvents.On("ProduceReviewEvent", mock.Anything, mock.MatchedBy(
			func(e domain.ReviewEvent) bool {
				return e.Type == domain.ReviewPosted && e.Review.ID == "r1"
			},
		)).Return(nil)

		got, err := newService(d).PostReview(t.Context(), review(rating))
		require.NoError(t, err, "rating %d", rating)
		assert.Equal(t, rating, got.Rating)
		d.reviewEvents.AssertExpectations(t)
	}

	for _, rating := range []int{0, 6} {
		d := newDeps()
		d.products.On("ReadProduct", mock.Anything, "p1").Return(product, nil)

		_, err := newService(d).PostReview(t.Context(), review(rating))
		require.ErrorIs(t, err, domain.ErrValidation, "rating %d", rating)

		var verr domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "rating", verr.Field)
		d.reviews.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
	}

	t.Run("UnknownProduct", func(t *testing.T) {
		d := newDeps()
		d.products.On("ReadProduct", mock.Anything, "p1").
			Return(domain.Product{}, domain.NotFoundError{
				Entity: domain.EntityProduct, ID: "p1",
			})

		_, err := newService(d).PostReview(t.Context(), review(4))
		require.ErrorIs(t, err, domain.ErrReference)
		d.reviews.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
	})

	t.Run("UnknownProductBeforeRating", func(t *testing.T) {
		d := newDeps()
		d.products.On("ReadProduct", mock.Anything, "missing").
			Return(domain.Product{}, domain.NotFoundError{
				Entity: domain.EntityProduct, ID: "missing",
			})

		_, err := newService(d).PostReview(t.Context(), domain.Review{
			ProductID: "missing", CustomerID: "c1", Rating: 9,
		})
		require.ErrorIs(t, err, domain.ErrReference)
		d.customers.AssertNotCalled(t, "ReadCustomer", mock.Anything, mock.Anything)
		d.reviews.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
	})

	t.Run("MissingProductID", func(t *testing.T) {
		d := newDeps()

		_, err := newService(d).PostReview(t.Context(), domain.Review{
			CustomerID: "c1", Rating: 4,
		})
		var verr domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "product", verr.Field)
		d.products.AssertNotCalled(t, "ReadProduct", mock.Anything, mock.Anything)
	})

	t.Run("UnknownCustomer", func(t *testing.T) {
		d := newDeps()
		d.products.On("ReadProduct", mock.Anything, "p1").Return(product, nil)
		d.customers.On("ReadCustomer", mock.Anything, "c1").
			Return(domain.Customer{}, domain.NotFoundError{
				Entity: domain.EntityCustomer, ID: "c1",
			})

		_, err := newService(d).PostReview(t.Context(), review(4))
		require.ErrorIs(t, err, domain.ErrReference)
		d.reviews.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
	})
}

func TestGetReview(t *testing.T) {
	d := newDeps()
	d.reviews.On("ReadReview", mock.Anything, "r1").Return(domain.Review{
		ID: "r1", ProductID: "p1", CustomerID: "c1", Rating: 4,
	}, nil)
	d.customers.On(
		"ReadCustomersByIDs", mock.Anything, []string{"c1"}, domain.CustomerName,
	).Return([]domain.Customer{{ID: "c1", FirstName: "Ann"}}, nil)
	d.products.On(
		"ReadProductsByIDs", mock.Anything, []string{"p1"}, domain.ProductName,
	).Return([]domain.Product(nil), nil)

	view, err := newService(d).GetReview(t.Context(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", view.Customer.Entity.FirstName)
	require.NotNil(t, view.Product)
	assert.True(t, view.Product.Unresolved())
	assert.Equal(t, "p1", view.Product.ID)
}

func TestListProductReviews(t *testing.T) {
	d := newDeps()
	d.reviews.On(
		"ReadReviews", mock.Anything, domain.ReviewFilter{ProductID: "p1"},
	).Return([]domain.Review{
		{ID: "r1", ProductID: "p1", CustomerID: "c1", Rating: 4},
		{ID: "r2", ProductID: "p1", CustomerID: "c2", Rating: 2},
	}, nil)
	d.customers.On(
		"ReadCustomersByIDs", mock.Anything, []string{"c1", "c2"},
		domain.CustomerName,
	).Return([]domain.Customer{{ID: "c1"}, {ID: "c2"}}, nil)

	views, err := newService(d).ListProductReviews(t.Context(), "p1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Nil(t, views[0].Product)
	d.products.AssertNotCalled(
		t, "ReadProductsByIDs", mock.Anything, mock.Anything, mock.Anything,
	)
}

func TestUpdateReview(t *testing.T) {
	stored := domain.Review{
		ID: "r1", ProductID: "p1", CustomerID: "c1", Rating: 4, Comment: "good",
	}

	t.Run("Rating", func(t *testing.T) {
		d := newDeps()
		rating := 2
		patch := domain.ReviewPatch{Rating: &rating}
		want := stored
		want.Rating = 2

		d.reviews.On("ReadReview", mock.Anything, "r1").Return(stored, nil)
		d.reviews.On("UpdateReview", mock.Anything, "r1", patch).Return(want, nil)
		d.reviewEvents.On("ProduceReviewEvent", mock.Anything, mock.MatchedBy(
			func(e domain.ReviewEvent) bool {
				return e.Type == domain.ReviewRevised && e.PreviousRating == 4 &&
					e.Review.Rating == 2
			},
		)).Return(nil)

		got, err := newService(d).UpdateReview(t.Context(), "r1", patch)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		d.reviewEvents.AssertExpectations(t)
	})

	t.Run("CommentOnly", func(t *testing.T) {
		d := newDeps()
		comment := "great"
		patch := domain.ReviewPatch{Comment: &comment}
		want := stored
		want.Comment = comment

		d.reviews.On("ReadReview", mock.Anything, "r1").Return(stored, nil)
		d.reviews.On("UpdateReview", mock.Anything, "r1", patch).Return(want, nil)

		_, err := newService(d).UpdateReview(t.Context(), "r1", patch)
		require.NoError(t, err)
		d.reviewEvents.AssertNotCalled(
			t, "ProduceReviewEvent", mock.Anything, mock.Anything,
		)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		d := newDeps()
		rating := 6
		d.reviews.On("ReadReview", mock.Anything, "r1").Return(stored, nil)

		_, err := newService(d).UpdateReview(
			t.Context(), "r1", domain.ReviewPatch{Rating: &rating},
		)
		require.ErrorIs(t, err, domain.ErrValidation)
		d.reviews.AssertNotCalled(
			t, "UpdateReview", mock.Anything, mock.Anything, mock.Anything,
		)
	})
}

func TestDeleteReview(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		d := newDeps()
		d.reviews.On("DeleteReview", mock.Anything, "r1").
			Return(domain.Review{ID: "r1", ProductID: "p1", Rating: 3}, nil)
		d.reviewEvents.On("ProduceReviewEvent", mock.Anything, mock.MatchedBy(
			func(e domain.ReviewEvent) bool {
				return e.Type == domain.ReviewRemoved && e.Review.Rating == 3
			},
		)).Return(nil)

		require.NoError(t, newService(d).DeleteReview(t.Context(), "r1"))
		d.reviewEvents.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		d := newDeps()
		d.reviews.On("DeleteReview", mock.Anything, "r404").
			Return(domain.Review{}, domain.NotFoundError{
				Entity: domain.EntityReview, ID: "r404",
			})

		err := newService(d).DeleteReview(t.Context(), "r404")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
