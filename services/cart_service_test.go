package services

import (
	"context"
	"testing"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults quantity and variant", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.sf.Carts.Add(ctx, "s1", models.AddCartItemRequest{ProductID: "product-1"}))

		items, err := f.store.ListItems(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
		assert.Equal(t, "Black", items[0].Color)
		assert.Equal(t, "S", items[0].Size)
		assert.Equal(t, []string{"Added to Cart"}, f.notifier.titles())
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newFixture(t)
		err := f.sf.Carts.Add(ctx, "s1", models.AddCartItemRequest{ProductID: "product-404"})
		assert.ErrorIs(t, err, models.ErrProductNotFound)
		assert.True(t, IsNotFound(err))
		assert.Empty(t, f.notifier.titles())
	})

	t.Run("negative quantity", func(t *testing.T) {
		f := newFixture(t)
		err := f.sf.Carts.Add(ctx, "s1", models.AddCartItemRequest{ProductID: "product-1", Quantity: -2})
		assert.ErrorIs(t, err, models.ErrInvalidQuantity)
	})

	t.Run("store failure notifies", func(t *testing.T) {
		f := newBrokenFixture(t)
		err := f.sf.Carts.Add(ctx, "s1", models.AddCartItemRequest{ProductID: "product-1"})
		assert.ErrorIs(t, err, errStoreDown)
		assert.Equal(t, []string{"Error"}, f.notifier.titles())
	})
}

func TestCartService_View(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.sf.Carts.Add(ctx, "s1", models.AddCartItemRequest{ProductID: "product-1", Quantity: 2}))
	require.NoError(t, f.sf.Carts.Add(ctx, "s1", models.AddCartItemRequest{ProductID: "product-3"}))
	require.NoError(t, f.store.AddItem(ctx, "s1", "product-gone", 1, "", ""))

	view, err := f.sf.Carts.View(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, view.Items, 2, "lines for unknown products are skipped")
	assert.Equal(t, 3, view.ItemCount)
	assert.True(t, decimal.NewFromInt(110).Equal(view.Subtotal), view.Subtotal.String())
	assert.True(t, decimal.NewFromInt(90).Equal(view.Items[0].Subtotal))
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.sf.Carts.Add(ctx, "s1", models.AddCartItemRequest{ProductID: "product-2", Quantity: 3}))
	items, err := f.store.ListItems(ctx, "s1")
	require.NoError(t, err)
	id := items[0].ID

	t.Run("clamps to one", func(t *testing.T) {
		require.NoError(t, f.sf.Carts.UpdateQuantity(ctx, "s1", id, 0))
		count, err := f.sf.Carts.Count(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, f.sf.Carts.Remove(ctx, "s1", id))
		assert.ErrorIs(t, f.sf.Carts.Remove(ctx, "s1", id), models.ErrCartItemNotFound)
	})

	t.Run("unknown line", func(t *testing.T) {
		err := f.sf.Carts.UpdateQuantity(ctx, "s1", uuid.New(), 2)
		assert.True(t, IsNotFound(err))
	})
}

func TestWishlistService(t *testing.T) {
	ctx := context.Background()

	t.Run("add twice notifies existing", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.sf.Wishlist.Add(ctx, "s1", "product-2"))
		require.NoError(t, f.sf.Wishlist.Add(ctx, "s1", "product-2"))
		assert.Equal(t, []string{"Added to Wishlist", "Already in Wishlist"}, f.notifier.titles())

		view, err := f.sf.Wishlist.View(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, 1, view.Count)
		assert.Equal(t, "product-2", view.Items[0].ID)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newFixture(t)
		assert.ErrorIs(t, f.sf.Wishlist.Add(ctx, "s1", "product-404"), models.ErrProductNotFound)
	})

	t.Run("counts", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.sf.Wishlist.Add(ctx, "s1", "product-1"))
		require.NoError(t, f.sf.Carts.Add(ctx, "s1", models.AddCartItemRequest{ProductID: "product-1", Quantity: 2}))

		counts, err := Counts(ctx, f.sf.Carts, f.sf.Wishlist, "s1")
		require.NoError(t, err)
		assert.Equal(t, models.SessionCounts{CartCount: 2, WishlistCount: 1}, counts)

		saved, err := f.sf.Wishlist.Contains(ctx, "s1", "product-1")
		require.NoError(t, err)
		assert.True(t, saved)
	})
}

func TestReviewService(t *testing.T) {
	ctx := context.Background()

	t.Run("validation happens before the store", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.sf.Reviews.Add(ctx, "s1", "product-2", models.AddReviewRequest{UserName: " ", Rating: 4})
		assert.ErrorIs(t, err, models.ErrInvalidReview)
		_, err = f.sf.Reviews.Add(ctx, "s1", "product-2", models.AddReviewRequest{UserName: "Dee", Rating: 6})
		assert.ErrorIs(t, err, models.ErrInvalidReview)
		assert.Empty(t, f.notifier.titles())
	})

	t.Run("added review lists first", func(t *testing.T) {
		f := newFixture(t)
		review, err := f.sf.Reviews.Add(ctx, "s1", "product-1", models.AddReviewRequest{UserName: "Dee", Rating: 4, Comment: "Lovely"})
		require.NoError(t, err)
		assert.Equal(t, "product-1", review.ProductID)

		reviews, err := f.sf.Reviews.List(ctx, "product-1")
		require.NoError(t, err)
		require.Len(t, reviews, 3)
		assert.Equal(t, "Dee", reviews[0].Author)
		assert.Equal(t, []string{"Review Submitted"}, f.notifier.titles())
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.sf.Reviews.List(ctx, "product-404")
		assert.ErrorIs(t, err, models.ErrProductNotFound)
	})
}
