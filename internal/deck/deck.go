package deck

import (
	"errors"
	"math/rand"
)

// Size is the number of cards in a full deck.
const Size = 52

// HandSize is the number of cards dealt to each seat in Teen Patti.
const HandSize = 3

// ErrInsufficientCards is returned when a deal asks for more cards than
// remain in the deck.
var ErrInsufficientCards = errors.New("deck: insufficient cards remaining")

// Deck is an ordered sequence of cards. It has value semantics: Shuffled
// and Deal return new decks and never mutate the receiver, so a caller
// can hold on to a deck and replay it.
type Deck struct {
	cards []Card
}

// New creates a full 52-card deck, one card per (suit, rank) pair,
// in a fixed unshuffled order.
func New() Deck {
	cards := make([]Card, 0, Size)
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return Deck{cards: cards}
}

// Shuffled returns a new deck with the same cards in Fisher-Yates
// shuffled order. The RNG is explicit so tests and simulations can
// reproduce a deal exactly.
func (d Deck) Shuffled(rng *rand.Rand) Deck {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return Deck{cards: cards}
}

// Deal splits off the first n cards and returns them along with the
// remaining deck. Fails with ErrInsufficientCards if fewer than n remain.
func (d Deck) Deal(n int) ([]Card, Deck, error) {
	if n < 0 || n > len(d.cards) {
		return nil, d, ErrInsufficientCards
	}
	dealt := make([]Card, n)
	copy(dealt, d.cards[:n])
	rest := make([]Card, len(d.cards)-n)
	copy(rest, d.cards[n:])
	return dealt, Deck{cards: rest}, nil
}

// DealHands deals cardsPer cards to each of numHands seats, seat 0 first.
// Given a fixed shuffled deck the result is deterministic.
func (d Deck) DealHands(numHands, cardsPer int) ([][]Card, Deck, error) {
	hands := make([][]Card, 0, numHands)
	rest := d
	for i := 0; i < numHands; i++ {
		var (
			hand []Card
			err  error
		)
		hand, rest, err = rest.Deal(cardsPer)
		if err != nil {
			return nil, d, err
		}
		hands = append(hands, hand)
	}
	return hands, rest, nil
}

// Len returns the number of cards remaining in the deck.
func (d Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the deck's cards in order.
func (d Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}
