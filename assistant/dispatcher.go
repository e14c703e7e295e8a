package assistant

import (
	"strings"

	"github.com/devkeshravani/engagewise-commerce-76/models"
)

const productPathMarker = "/product/"

// DispatchContext is what the dispatcher knows about the visitor's page.
type DispatchContext struct {
	CurrentPath    string
	CurrentProduct *models.Product
	// SelectedColor is the color currently picked on the product page.
	SelectedColor string
}

// OnProductPage reports whether product-gated rules may fire.
func (c DispatchContext) OnProductPage() bool {
	return strings.Contains(c.CurrentPath, productPathMarker) && c.CurrentProduct != nil
}

// ProductIDFromPath extracts "product-12" from "/product/product-12".
func ProductIDFromPath(path string) (string, bool) {
	_, rest, ok := strings.Cut(path, productPathMarker)
	if !ok {
		return "", false
	}
	id, _, _ := strings.Cut(rest, "/")
	id, _, _ = strings.Cut(id, "?")
	return id, id != ""
}

// Dispatcher maps utterances to actions with a first-match rule scan.
// It is stateless and safe for concurrent use.
type Dispatcher struct {
	rules []rule
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{rules: defaultRules()}
}

// Dispatch returns the action of the first rule matching utterance, or a
// page-aware fallback. Rule is set to the name of the matching rule.
func (d *Dispatcher) Dispatch(utterance string, ctx DispatchContext) models.IntentAction {
	input := strings.ToLower(utterance)
	for _, r := range d.rules {
		if r.match(input, ctx) {
			action := r.action(ctx, utterance)
			action.Rule = r.name
			return action
		}
	}
	action := fallback(ctx, utterance)
	action.Rule = "fallback"
	return action
}
