package seeder

import (
	"fmt"
	"strings"

	"github.com/Rana718/scout/internal/sampling"
	"github.com/google/uuid"
)

// faker produces the free-text fields: company, place and product names, lorem text.
type faker struct {
	s *sampling.Sampler
}

var (
	companyPrefixes = []string{"Golden", "Pacific", "Island", "Sunrise", "Metro", "Evergreen", "Bayani", "Luzon", "Tropic", "Harbor", "Prime", "Mabuhay"}
	companyNouns    = []string{"Foods", "Trading", "Holdings", "Industries", "Consumer Goods", "Distributors", "Manila", "Brands", "Enterprises", "Products"}
	cities          = []string{"Manila", "Quezon City", "Makati", "Pasig", "Cebu City", "Davao City", "Iloilo City", "Bacolod", "Baguio", "Cagayan de Oro", "Zamboanga City", "General Santos", "Antipolo", "Taguig", "Tagaytay"}
	states          = []string{"Metro Manila", "Cebu", "Davao del Sur", "Iloilo", "Pampanga", "Laguna", "Cavite", "Benguet", "Bulacan", "Batangas"}
	streets         = []string{"Rizal", "Mabini", "Bonifacio", "Aguinaldo", "Quezon", "Luna", "Del Pilar", "Burgos", "Magsaysay", "Roxas", "Osmeña", "Sampaguita"}
	streetKinds     = []string{"Street", "Avenue", "Road", "Drive", "Extension"}
	productAdjs     = []string{"Classic", "Original", "Premium", "Lite", "Extra", "Family", "Spicy", "Sweet", "Fresh", "Creamy", "Crispy", "Natural"}
	productNouns    = []string{"Soda", "Chips", "Soap", "Shampoo", "Noodles", "Coffee", "Milk", "Juice", "Crackers", "Detergent", "Toothpaste", "Bread", "Ice Cream", "Sardines", "Biscuits"}
	departments     = []string{"Grocery", "Health", "Beauty", "Home", "Baby", "Kitchen", "Outdoors", "Snacks", "Drinks", "Frozen"}
	loremWords      = []string{"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit", "sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore", "magna", "aliqua"}
	userAgents      = []string{
		"Mozilla/5.0 (Linux; Android 11; POS-A100) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/96.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/110.0 Safari/537.36",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Edge/109.0",
		"scout-edge-agent/2.3.1 (linux; arm64)",
	}
)

func (f faker) companyName() string {
	return sampling.Pick(f.s, companyPrefixes) + " " + sampling.Pick(f.s, companyNouns)
}

func (f faker) city() string {
	return sampling.Pick(f.s, cities)
}

func (f faker) state() string {
	return sampling.Pick(f.s, states)
}

func (f faker) streetName() string {
	return sampling.Pick(f.s, streets) + " " + sampling.Pick(f.s, streetKinds)
}

func (f faker) streetAddress() string {
	return fmt.Sprintf("%d %s", f.s.IntBetween(1, 9999), f.streetName())
}

func (f faker) productName() string {
	return sampling.Pick(f.s, productAdjs) + " " + sampling.Pick(f.s, productNouns)
}

func (f faker) department() string {
	return sampling.Pick(f.s, departments)
}

func (f faker) sentence() string {
	n := f.s.IntBetween(4, 10)
	words := make([]string, n)
	for i := range words {
		words[i] = sampling.Pick(f.s, loremWords)
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ") + "."
}

func (f faker) paragraph() string {
	n := f.s.IntBetween(3, 5)
	sentences := make([]string, n)
	for i := range sentences {
		sentences[i] = f.sentence()
	}
	return strings.Join(sentences, " ")
}

func (f faker) userAgent() string {
	return sampling.Pick(f.s, userAgents)
}

func (f faker) uuid() string {
	return uuid.NewString()
}
