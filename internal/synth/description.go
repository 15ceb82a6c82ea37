package synth

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/loftlist/seedkit/internal/domain"
)

// Description building blocks. A description is one opener referencing
// the title, two to three feature sentences, one delivery sentence for
// the listing's city, and a fixed closing line.

var openers = []string{
	"Selling our %s after a move.",
	"Beautiful %s looking for a new home.",
	"Up for sale: %s in great shape.",
	"Offering this %s from a smoke-free household.",
}

var featureSentences = []string{
	"The %s finish has been well cared for.",
	"Made with quality %s throughout.",
	"Condition is %s, exactly as pictured.",
	"Sturdy construction with a lovely %s surface.",
	"Barely used and in %s condition.",
}

var deliverySentences = []string{
	"Delivery possible within %s for a small fee.",
	"Can be delivered anywhere in %s by arrangement.",
	"Located in %s, happy to help with transport.",
}

const closingSentence = "Pickup preferred; bring a helping hand for the stairs."

// makeDescription assembles the listing prose.
func makeDescription(rng *rand.Rand, title, city string, material string, condition domain.Condition) string {
	var b strings.Builder

	fmt.Fprintf(&b, openers[rng.Intn(len(openers))], strings.ToLower(title))

	featureCount := 2 + rng.Intn(2) // 2-3 feature sentences
	indices := rng.Perm(len(featureSentences))[:featureCount]
	for _, i := range indices {
		b.WriteByte(' ')
		sentence := featureSentences[i]
		// Feature sentences reference either the material or the condition.
		if strings.Contains(sentence, "condition") || strings.Contains(sentence, "Condition") {
			fmt.Fprintf(&b, sentence, condition)
		} else {
			fmt.Fprintf(&b, sentence, material)
		}
	}

	b.WriteByte(' ')
	fmt.Fprintf(&b, deliverySentences[rng.Intn(len(deliverySentences))], city)

	b.WriteByte(' ')
	b.WriteString(closingSentence)

	return b.String()
}
