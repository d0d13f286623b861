// Package store holds the shared session state behind the storefront:
// survey answers, recommendation results, selections, cart, and
// wishlist. It is an injected dependency rather than a package-level
// singleton so every test can run against a fresh instance.
package store

import (
	"context"
	"sync"

	"github.com/evoljewels/evolcli/internal/catalog"
	"github.com/evoljewels/evolcli/internal/survey"
)

// Recommender produces a recommendation result for a set of answers.
// The production implementation (recommend.Service behind a
// RecommenderFunc) never returns an error; the error path exists so an
// unexpected failure from a wrapper still lands in store state instead
// of vanishing.
type Recommender interface {
	GetRecommendations(ctx context.Context, answers survey.Answers) (*catalog.Result, error)
}

// RecommenderFunc adapts a function to the Recommender interface.
type RecommenderFunc func(ctx context.Context, answers survey.Answers) (*catalog.Result, error)

// GetRecommendations implements Recommender.
func (f RecommenderFunc) GetRecommendations(ctx context.Context, answers survey.Answers) (*catalog.Result, error) {
	return f(ctx, answers)
}

// CartItem is a product plus its quantity in the bag.
type CartItem struct {
	catalog.Product
	Quantity int
}

// Store is the observable application state container. Every action is
// atomic under the internal mutex and notifies subscribers once the
// transition is complete.
type Store struct {
	mu        sync.Mutex
	rec       Recommender
	subs      map[int]func()
	nextSubID int
	surveyGen int

	answers           survey.Answers
	selectedCelebrity *catalog.Celebrity
	selectedCategory  string
	selectedProduct   *catalog.Product
	recommendations   *catalog.Result
	loading           bool
	recommendationErr string
	cart              []CartItem
	wishlist          []catalog.Product
	showCart          bool
	showWishlist      bool
}

// New creates a Store in its initial empty state.
func New(rec Recommender) *Store {
	s := &Store{rec: rec, subs: make(map[int]func())}
	s.resetLocked()
	return s
}

func (s *Store) resetLocked() {
	s.answers = make(survey.Answers)
	s.selectedCelebrity = nil
	s.selectedCategory = ""
	s.selectedProduct = nil
	s.recommendations = &catalog.Result{Celebrities: []catalog.Celebrity{}, Products: []catalog.Product{}}
	s.loading = false
	s.recommendationErr = ""
	s.cart = nil
	s.wishlist = nil
	s.showCart = false
	s.showWishlist = false
}

// Subscribe registers fn to run after every completed state transition
// and returns the matching unsubscribe func.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// notify runs outside the lock so subscribers may read store state.
func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// AnswerQuestion records the answer at the given question index.
// Negative indices are ignored.
func (s *Store) AnswerQuestion(index int, answer survey.Answer) {
	if index < 0 {
		return
	}
	s.mu.Lock()
	s.answers[index] = answer
	s.mu.Unlock()
	s.notify()
}

// FinishSurvey asks the Recommender for results using the current
// answers. Overlapping calls follow latest-call-wins: an earlier call
// that resolves after a newer one started is discarded wholesale.
func (s *Store) FinishSurvey(ctx context.Context) (*catalog.Result, error) {
	s.mu.Lock()
	s.surveyGen++
	gen := s.surveyGen
	s.loading = true
	s.recommendationErr = ""
	answers := s.answers.Clone()
	rec := s.rec
	s.mu.Unlock()
	s.notify()

	result, err := rec.GetRecommendations(ctx, answers)

	s.mu.Lock()
	if gen != s.surveyGen {
		// A newer survey run superseded this one.
		s.mu.Unlock()
		return result, err
	}
	s.loading = false
	if err != nil {
		s.recommendationErr = err.Error()
		s.mu.Unlock()
		s.notify()
		return nil, err
	}
	s.recommendations = result
	s.mu.Unlock()
	s.notify()
	return result, nil
}

// SelectCelebrity replaces the current celebrity selection.
func (s *Store) SelectCelebrity(c *catalog.Celebrity) {
	s.mu.Lock()
	s.selectedCelebrity = c
	s.mu.Unlock()
	s.notify()
}

// SelectCategory replaces the current category selection.
func (s *Store) SelectCategory(category string) {
	s.mu.Lock()
	s.selectedCategory = category
	s.mu.Unlock()
	s.notify()
}

// ViewAllProducts clears the category selection.
func (s *Store) ViewAllProducts() {
	s.mu.Lock()
	s.selectedCategory = ""
	s.mu.Unlock()
	s.notify()
}

// SelectProduct replaces the current product selection.
func (s *Store) SelectProduct(p *catalog.Product) {
	s.mu.Lock()
	s.selectedProduct = p
	s.mu.Unlock()
	s.notify()
}

// AddToCart puts a product in the bag, incrementing the quantity when
// it is already there.
func (s *Store) AddToCart(p catalog.Product) {
	s.mu.Lock()
	found := false
	for i := range s.cart {
		if s.cart[i].ID == p.ID {
			s.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.cart = append(s.cart, CartItem{Product: p, Quantity: 1})
	}
	s.mu.Unlock()
	s.notify()
}

// RemoveFromCart drops every cart entry with the given product id.
func (s *Store) RemoveFromCart(id string) {
	s.mu.Lock()
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.cart = kept
	s.mu.Unlock()
	s.notify()
}

// UpdateCartQuantity sets the quantity for a product, removing the
// entry when the quantity drops to zero or below. Unknown ids are a
// no-op.
func (s *Store) UpdateCartQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(id)
		return
	}
	s.mu.Lock()
	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// AddToWishlist saves a product, at most once per id.
func (s *Store) AddToWishlist(p catalog.Product) {
	s.mu.Lock()
	for _, item := range s.wishlist {
		if item.ID == p.ID {
			s.mu.Unlock()
			return
		}
	}
	s.wishlist = append(s.wishlist, p)
	s.mu.Unlock()
	s.notify()
}

// RemoveFromWishlist drops the wishlist entry with the given id.
func (s *Store) RemoveFromWishlist(id string) {
	s.mu.Lock()
	kept := s.wishlist[:0]
	for _, item := range s.wishlist {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.wishlist = kept
	s.mu.Unlock()
	s.notify()
}

// ToggleCart flips the cart overlay flag.
func (s *Store) ToggleCart() {
	s.mu.Lock()
	s.showCart = !s.showCart
	s.mu.Unlock()
	s.notify()
}

// ToggleWishlist flips the wishlist overlay flag.
func (s *Store) ToggleWishlist() {
	s.mu.Lock()
	s.showWishlist = !s.showWishlist
	s.mu.Unlock()
	s.notify()
}

// Reset restores the initial empty state. In-flight survey runs resolve
// as stale and are discarded.
func (s *Store) Reset() {
	s.mu.Lock()
	s.surveyGen++
	s.resetLocked()
	s.mu.Unlock()
	s.notify()
}

// Answers returns a copy of the recorded survey answers.
func (s *Store) Answers() survey.Answers {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answers.Clone()
}

// Recommendations returns the current result. The returned value shares
// no top-level slices with the store; callers must still treat the
// elements as read-only.
func (s *Store) Recommendations() *catalog.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := *s.recommendations
	r.Celebrities = append([]catalog.Celebrity(nil), s.recommendations.Celebrities...)
	r.Products = append([]catalog.Product(nil), s.recommendations.Products...)
	return &r
}

// IsLoadingRecommendations reports whether a survey run is in flight.
func (s *Store) IsLoadingRecommendations() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// RecommendationError returns the recorded error message, if any.
func (s *Store) RecommendationError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recommendationErr
}

// SelectedCelebrity returns the current celebrity selection.
func (s *Store) SelectedCelebrity() *catalog.Celebrity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCelebrity
}

// SelectedCategory returns the current category selection ("" means all).
func (s *Store) SelectedCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCategory
}

// SelectedProduct returns the current product selection.
func (s *Store) SelectedProduct() *catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedProduct
}

// Cart returns a copy of the cart contents.
func (s *Store) Cart() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CartItem(nil), s.cart...)
}

// Wishlist returns a copy of the wishlist contents.
func (s *Store) Wishlist() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Product(nil), s.wishlist...)
}

// InWishlist reports whether the given product id is saved.
func (s *Store) InWishlist(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.wishlist {
		if item.ID == id {
			return true
		}
	}
	return false
}

// CartCount returns the total quantity across all cart entries.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.cart {
		total += item.Quantity
	}
	return total
}

// CartSubtotal returns the cart total in whole rupees.
func (s *Store) CartSubtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.cart {
		total += item.Price * item.Quantity
	}
	return total
}

// ShowCart reports whether the cart overlay is open.
func (s *Store) ShowCart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showCart
}

// ShowWishlist reports whether the wishlist overlay is open.
func (s *Store) ShowWishlist() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showWishlist
}
