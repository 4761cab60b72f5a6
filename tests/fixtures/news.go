// Package fixtures provides reusable test data generators, keeping test
// content consistent across test suites.
package fixtures

import (
	"fmt"
	"strings"
	"time"

	"newsdesk/internal/domain/entity"
)

// baseSentences is the pool the body generator cycles through.
var baseSentences = []string{
	"Artificial intelligence technology is rapidly transforming our daily lives.",
	"Machine learning algorithms can learn complex patterns from large datasets.",
	"Deep learning models excel in areas such as image recognition and natural language processing.",
	"Neural networks are computational models inspired by the structure of the human brain.",
	"Data science combines statistics, programming, and domain expertise.",
	"Cloud computing has made large-scale computational resources easily accessible.",
	"Natural language processing is applied to text classification, sentiment analysis, and machine translation.",
	"Computer vision advances enable automatic recognition of images and videos.",
	"Big data analytics provides valuable business insights.",
	"The proliferation of IoT devices has made real-time data collection and analysis crucial.",
	"Edge computing reduces latency by processing data closer to the source.",
	"Quantum computing holds promise for solving problems intractable for classical computers.",
}

// GenerateText generates coherent English text of at least minLength
// characters (counted in runes, not bytes).
func GenerateText(minLength int) string {
	var builder strings.Builder
	i := 0
	for len([]rune(builder.String())) < minLength {
		if i > 0 {
			builder.WriteString(" ")
		}
		builder.WriteString(baseSentences[i%len(baseSentences)])
		i++
	}
	return builder.String()
}

// ValidText returns a body that satisfies the minimum news text length.
func ValidText() string {
	return GenerateText(entity.MinTextLength)
}

// NewsOptions configures a generated news entity.
type NewsOptions struct {
	ID              int64
	Author          string
	Title           string
	PublicationDate time.Time
	FirstHand       bool
}

// NewNews builds a news entity with a valid body. Zero-value options fall
// back to distinct, deterministic defaults keyed by ID.
func NewNews(opts NewsOptions) *entity.News {
	if opts.Author == "" {
		opts.Author = "Jane Reporter"
	}
	if opts.Title == "" {
		opts.Title = fmt.Sprintf("Story %d", opts.ID)
	}
	if opts.PublicationDate.IsZero() {
		opts.PublicationDate = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	}
	return &entity.News{
		ID:              opts.ID,
		Author:          opts.Author,
		Title:           opts.Title,
		Text:            ValidText(),
		PublicationDate: opts.PublicationDate,
		FirstHand:       opts.FirstHand,
	}
}
