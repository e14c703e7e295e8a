package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/devkeshravani/engagewise-commerce-76/assistant"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(t *testing.T, chat *ChatService, session, text, path string) models.ChatReply {
	t.Helper()
	reply, err := chat.Send(context.Background(), session, models.SendChatMessageRequest{Text: text, CurrentPath: path})
	require.NoError(t, err)
	return reply
}

func TestChatService_Send(t *testing.T) {
	t.Run("navigation is returned to the client", func(t *testing.T) {
		f := newFixture(t)
		reply := send(t, f.sf.Chat, "s1", "Go to cart", "/")
		assert.Equal(t, models.ActionNavigate, reply.Action.Kind)
		assert.Equal(t, "/cart", reply.Action.Target)
		assert.Equal(t, reply.Action.Text, reply.Reply)
		assert.False(t, reply.Pending)
		assert.False(t, reply.State.ShowingCategories)
	})

	t.Run("add to cart mutates the store", func(t *testing.T) {
		f := newFixture(t)
		reply := send(t, f.sf.Chat, "s1", "Add to cart", "/product/product-1")
		assert.Equal(t, models.ActionMutateCart, reply.Action.Kind)
		assert.Equal(t, assistant.CartAdded("Maxi Dress"), reply.Reply)
		assert.Equal(t, 1, reply.Counts.CartCount)

		items, err := f.store.ListItems(context.Background(), "s1")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Black", items[0].Color)
	})

	t.Run("add to wishlist mutates the store", func(t *testing.T) {
		f := newFixture(t)
		reply := send(t, f.sf.Chat, "s1", "add to wishlist please", "/product/product-2?ref=grid")
		assert.Equal(t, models.ActionMutateWishlist, reply.Action.Kind)
		assert.Equal(t, assistant.WishlistAdded("Midi Dress"), reply.Reply)
		assert.Equal(t, 1, reply.Counts.WishlistCount)
	})

	t.Run("store failures become apologies", func(t *testing.T) {
		f := newBrokenFixture(t)
		assert.Equal(t, assistant.CartFailed, send(t, f.sf.Chat, "s1", "add to cart", "/product/product-1").Reply)
		assert.Equal(t, assistant.WishlistFailed, send(t, f.sf.Chat, "s1", "add to wishlist", "/product/product-1").Reply)
	})

	t.Run("unknown product page falls back", func(t *testing.T) {
		f := newFixture(t)
		reply := send(t, f.sf.Chat, "s1", "add to cart", "/product/product-404")
		assert.Equal(t, models.ActionFallback, reply.Action.Kind)
		assert.Zero(t, reply.Counts.CartCount)
	})

	t.Run("color rotation uses the selected color", func(t *testing.T) {
		f := newFixture(t)
		reply, err := f.sf.Chat.Send(context.Background(), "s1", models.SendChatMessageRequest{
			Text:          "show a different color",
			CurrentPath:   "/product/product-1",
			SelectedColor: "Black",
		})
		require.NoError(t, err)
		assert.Equal(t, models.ActionRotateColor, reply.Action.Kind)
		assert.Equal(t, "Navy", reply.Action.Color)
	})

	t.Run("transcript records both sides", func(t *testing.T) {
		f := newFixture(t)
		send(t, f.sf.Chat, "s1", "what is your return policy", "/")
		transcript := f.sf.Chat.Transcript("s1")
		require.Len(t, transcript, 2)
		assert.Equal(t, models.SenderUser, transcript[0].Sender)
		assert.Equal(t, models.SenderAssistant, transcript[1].Sender)
	})
}

func TestChatService_StateAndEnd(t *testing.T) {
	f := newFixture(t)
	open := true

	state, err := f.sf.Chat.UpdateState("s1", models.UpdateChatStateRequest{Open: &open})
	require.NoError(t, err)
	assert.True(t, state.Open)
	require.Len(t, f.sf.Chat.Transcript("s1"), 1)
	assert.Equal(t, assistant.Greeting, f.sf.Chat.Transcript("s1")[0].Text)

	assert.True(t, f.sf.Chat.End("s1"))
	assert.False(t, f.sf.Chat.End("s1"))
	assert.Empty(t, f.sf.Chat.Transcript("s1"), "a new conversation starts after End")
}

func TestChatService_ConcurrentSessions(t *testing.T) {
	f := newFixture(t)
	var wg sync.WaitGroup
	for _, id := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for i := 0; i < 5; i++ {
				_, err := f.sf.Chat.Send(context.Background(), id, models.SendChatMessageRequest{Text: "add to cart", CurrentPath: "/product/product-3"})
				assert.NoError(t, err)
			}
		}(id)
	}
	wg.Wait()

	for _, id := range []string{"a", "b", "c", "d"} {
		count, err := f.sf.Carts.Count(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 5, count)
		assert.Len(t, f.sf.Chat.Transcript(id), 10)
	}
}

func TestChatService_MenuAndSuggestions(t *testing.T) {
	f := newFixture(t)
	assert.Len(t, f.sf.Chat.Menu(), 5)
	assert.Len(t, f.sf.Chat.Suggestions("/cart"), 4)
}

func TestChatService_ReadsDoNotStartSessions(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 500; i++ {
		id := fmt.Sprintf("visitor-%d", i)
		assert.Empty(t, f.sf.Chat.Transcript(id))
		assert.Equal(t, assistant.InitialState(), f.sf.Chat.State(id))
	}
	assert.Zero(t, f.sf.Chat.sessions.Len())

	send(t, f.sf.Chat, "visitor-1", "go to cart", "/")
	assert.Equal(t, 1, f.sf.Chat.sessions.Len())
	assert.Len(t, f.sf.Chat.Transcript("visitor-1"), 2)
}

func TestChatService_RejectsBlankMessages(t *testing.T) {
	f := newFixture(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := f.sf.Chat.Send(context.Background(), "s1", models.SendChatMessageRequest{Text: text, CurrentPath: "/"})
		assert.ErrorIs(t, err, models.ErrEmptyMessage)
	}
	assert.Empty(t, f.sf.Chat.Transcript("s1"))
	assert.Zero(t, f.sf.Chat.sessions.Len())
}
