// Package chatbot implements the storefront's rule-based chat widget: a
// keyword table checked in priority order, with catalog facts filled into the
// replies. There is no model behind it.
package chatbot

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/samadhii99/Shopping-Store/catalog"
)

const Welcome = "Hi! I'm the Envogue shopping assistant. Ask me about our products, payments, shipping or returns."

var (
	greetingPhrases = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening", "howdy", "greetings"}
	thanksPhrases   = []string{"thank", "thanks", "appreciated"}
	farewellPhrases = []string{"bye", "goodbye", "see you", "take care"}
	moodPhrases     = []string{"how are you", "how's it going", "feeling", "doing today"}

	fallbackReplies = []string{
		"I'm not sure I follow. Could you rephrase that?",
		"I can help with products, orders, payments, shipping and returns. What would you like to know?",
		"Hmm, I don't have an answer for that one. Try asking about our products or your order.",
	}
)

// Responder answers one query at a time. It keeps no conversation state.
type Responder struct {
	source catalog.Source
	pick   func(n int) int // fallback selector, swappable in tests
}

func New(source catalog.Source) *Responder {
	return &Responder{source: source, pick: rand.Intn}
}

// Reply produces the canned answer for a query. Rules are checked top to
// bottom; the first match wins, and an unmatched query gets a random
// fallback. Conversational phrases match on word boundaries so that, say,
// "shipping" does not trip the "hi" greeting.
func (r *Responder) Reply(query string) string {
	q := normalize(query)

	switch {
	case containsPhrase(q, greetingPhrases):
		return "Hello! Welcome to Envogue. How can I help you today?"
	case containsPhrase(q, thanksPhrases):
		return "You're welcome! Anything else I can help with?"
	case containsPhrase(q, farewellPhrases):
		return "Goodbye! Thanks for visiting Envogue."
	case containsPhrase(q, moodPhrases):
		return "I'm doing great, thanks for asking! What can I find for you?"
	case strings.Contains(q, "product") || strings.Contains(q, "available"):
		stats := catalog.Summarize(r.source)
		return fmt.Sprintf(
			"We carry %d products across %s, %d of them in stock right now.",
			stats.TotalProducts, strings.Join(stats.Categories, ", "), stats.InStock,
		)
	case strings.Contains(q, "recommend"):
		p, ok := catalog.FirstInStock(r.source)
		if !ok {
			return "I'm sorry, everything is out of stock at the moment. Please check back soon."
		}
		return fmt.Sprintf(
			"I'd suggest the %s from our %s line at %.2f, available in %s.",
			p.Name, p.Category, p.SalePrice, strings.Join(p.Colors, ", "),
		)
	case strings.Contains(q, "payment") || strings.Contains(q, "installment"):
		return "We accept credit card, PayPal, bank transfer and cash on delivery. Most items can also be paid in three monthly installments."
	case strings.Contains(q, "order") || strings.Contains(q, "place"):
		return "Add items to your cart, then head to checkout. You'll enter shipping details, pick a payment method and review before confirming."
	case strings.Contains(q, "shipping") || strings.Contains(q, "track"):
		return "Shipping is a flat 150, free on orders over 1000. You'll get your order number at checkout to track delivery."
	case strings.Contains(q, "return") || strings.Contains(q, "policy"):
		return "You can return any unworn item within 30 days for a full refund."
	case strings.Contains(q, "support") || strings.Contains(q, "contact"):
		return "You can reach our support team through the contact page, or just keep asking me here."
	case strings.Contains(q, "discount"):
		return "Keep an eye on the homepage carousel for seasonal discounts. Free shipping kicks in over 1000."
	default:
		return fallbackReplies[r.pick(len(fallbackReplies))]
	}
}

// normalize lowercases the query and strips punctuation so phrase matching
// works on whole words.
func normalize(query string) string {
	q := strings.ToLower(query)
	var b strings.Builder
	for _, r := range q {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') || r == '\'' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return " " + strings.Join(strings.Fields(b.String()), " ") + " "
}

func containsPhrase(q string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(q, " "+p+" ") {
			return true
		}
	}
	return false
}
