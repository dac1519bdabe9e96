package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SlideContent is the body of a slide: either free text or an ordered
// list of bullet items. Decks arrive from the generation pipeline with
// both shapes, so the distinction is kept explicit instead of being
// inferred at every use site.
type SlideContent struct {
	text  string
	items []string
	list  bool
}

// TextContent creates slide content from a single text block.
func TextContent(text string) SlideContent {
	return SlideContent{text: text}
}

// ItemsContent creates slide content from an ordered list of items.
func ItemsContent(items []string) SlideContent {
	return SlideContent{items: items, list: true}
}

// IsList reports whether the content is an item list.
func (c SlideContent) IsList() bool { return c.list }

// Items returns the bullet items, or nil for text content.
func (c SlideContent) Items() []string { return c.items }

// Flatten joins the content into a single text for similarity analysis.
func (c SlideContent) Flatten() string {
	if c.list {
		return strings.Join(c.items, " ")
	}
	return c.text
}

// UnmarshalJSON accepts both a plain string and an array of values
// convertible to string, matching the deck format the generator emits.
func (c *SlideContent) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*c = TextContent(text)
		return nil
	}

	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("slide content must be a string or an array: %w", err)
	}

	items := make([]string, len(raw))
	for i, v := range raw {
		items[i] = fmt.Sprint(v)
	}
	*c = ItemsContent(items)
	return nil
}

// MarshalJSON emits the original shape: string for text, array for items.
func (c SlideContent) MarshalJSON() ([]byte, error) {
	if c.list {
		return json.Marshal(c.items)
	}
	return json.Marshal(c.text)
}

// Suggestion is an accepted image match attached to a slide.
type Suggestion struct {
	ImageName   string  `json:"suggested_image"`
	Score       float64 `json:"image_similarity_score"`
	Description string  `json:"image_description,omitempty"`
}

// Slide is one slide of a generated deck. Position is implied by the
// slide's index within the deck; the matcher fills Suggestion in place
// when a candidate image clears the acceptance threshold.
type Slide struct {
	Title      string       `json:"title"`
	Content    SlideContent `json:"content"`
	Suggestion *Suggestion  `json:"suggestion,omitempty"`
}

// CombinedText merges title and content into one analysis text.
func (s *Slide) CombinedText() string {
	return strings.TrimSpace(s.Title + " " + s.Content.Flatten())
}

// Deck is an ordered slide sequence; slice order is presentation order.
type Deck struct {
	Slides []Slide `json:"slides"`
}
