package services

import (
	"context"
	"errors"
	"strings"

	"github.com/devkeshravani/engagewise-commerce-76/assistant"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"go.uber.org/zap"
)

// ChatService runs the assistant for each visitor: it records the message,
// dispatches it, executes cart and wishlist mutations, and schedules the
// reply on the visitor's session.
type ChatService struct {
	dispatcher *assistant.Dispatcher
	sessions   *assistant.SessionRegistry
	catalog    *CatalogService
	carts      *CartService
	wishlist   *WishlistService
	logger     *zap.Logger
}

func NewChatService(
	sessions *assistant.SessionRegistry,
	catalog *CatalogService,
	carts *CartService,
	wishlist *WishlistService,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		dispatcher: assistant.NewDispatcher(),
		sessions:   sessions,
		catalog:    catalog,
		carts:      carts,
		wishlist:   wishlist,
		logger:     logger,
	}
}

// Send processes one visitor message. Blank messages are rejected before
// they reach the transcript.
func (s *ChatService) Send(ctx context.Context, sessionID string, req models.SendChatMessageRequest) (models.ChatReply, error) {
	if strings.TrimSpace(req.Text) == "" {
		return models.ChatReply{}, models.ErrEmptyMessage
	}
	session := s.sessions.Get(sessionID)
	if err := session.AppendUser(req.Text); err != nil {
		return models.ChatReply{}, err
	}
	session.Touch(req.CurrentPath)

	dctx := assistant.DispatchContext{CurrentPath: req.CurrentPath, SelectedColor: req.SelectedColor}
	if id, ok := assistant.ProductIDFromPath(req.CurrentPath); ok {
		p, err := s.catalog.Product(ctx, id)
		switch {
		case err == nil:
			dctx.CurrentProduct = &p
		case !IsNotFound(err):
			return models.ChatReply{}, err
		}
	}

	action := s.dispatcher.Dispatch(req.Text, dctx)
	s.logger.Debug("Chat intent",
		zap.String("session_id", sessionID),
		zap.String("rule", action.Rule),
		zap.String("kind", string(action.Kind)))

	reply := s.execute(ctx, sessionID, action, dctx)
	pending, err := session.Say(reply)
	if err != nil {
		return models.ChatReply{}, err
	}

	counts, err := Counts(ctx, s.carts, s.wishlist, sessionID)
	if err != nil {
		s.logger.Warn("⚠️ Could not refresh session counts", zap.String("session_id", sessionID), zap.Error(err))
	}

	return models.ChatReply{
		Action:  action,
		Reply:   reply,
		Pending: pending,
		State:   session.State(),
		Counts:  counts,
	}, nil
}

// execute performs store mutations and returns the assistant's reply text.
// Navigation, scrolling and color changes are left to the client.
func (s *ChatService) execute(ctx context.Context, sessionID string, action models.IntentAction, dctx assistant.DispatchContext) string {
	switch action.Kind {
	case models.ActionMutateCart:
		err := s.carts.Add(ctx, sessionID, models.AddCartItemRequest{
			ProductID: action.ProductID,
			Quantity:  action.Quantity,
			Color:     action.Color,
			Size:      action.Size,
		})
		switch {
		case err == nil:
			return assistant.CartAdded(productName(dctx))
		case IsNotFound(err):
			return assistant.ProductMissing
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			return assistant.CartErrored
		default:
			return assistant.CartFailed
		}

	case models.ActionMutateWishlist:
		err := s.wishlist.Add(ctx, sessionID, action.ProductID)
		switch {
		case err == nil:
			return assistant.WishlistAdded(productName(dctx))
		case IsNotFound(err):
			return assistant.ProductMissing
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			return assistant.WishlistErrored
		default:
			return assistant.WishlistFailed
		}
	}
	return action.Text
}

func productName(dctx assistant.DispatchContext) string {
	if dctx.CurrentProduct == nil {
		return "This item"
	}
	return dctx.CurrentProduct.Name
}

// Transcript returns the visitor's messages so far. Reading never starts a
// conversation.
func (s *ChatService) Transcript(sessionID string) []models.ChatMessage {
	session, ok := s.sessions.Lookup(sessionID)
	if !ok {
		return []models.ChatMessage{}
	}
	return session.Transcript()
}

func (s *ChatService) State(sessionID string) models.ChatState {
	session, ok := s.sessions.Lookup(sessionID)
	if !ok {
		return assistant.InitialState()
	}
	return session.State()
}

// UpdateState applies facet changes; touching a closed session re-creates it.
func (s *ChatService) UpdateState(sessionID string, req models.UpdateChatStateRequest) (models.ChatState, error) {
	session := s.sessions.Get(sessionID)
	if err := session.Apply(req); err != nil {
		return models.ChatState{}, err
	}
	return session.State(), nil
}

// End tears the conversation down, cancelling any pending reply.
func (s *ChatService) End(sessionID string) bool {
	return s.sessions.Remove(sessionID)
}

// Shutdown closes every conversation.
func (s *ChatService) Shutdown() {
	s.sessions.CloseAll()
}

func (s *ChatService) Menu() []assistant.MenuCategory {
	return assistant.Menu()
}

func (s *ChatService) Suggestions(path string) []string {
	return assistant.SuggestedQuestions(path)
}
