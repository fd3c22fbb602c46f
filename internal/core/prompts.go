package core

import "fmt"

// Context defaults applied when the caller does not supply a field.
const (
	defaultH1Topic   = "a generic web page"
	defaultTitle     = "A very long, unoptimized title."
	defaultImageSrc  = "a corporate logo"
	defaultMetaTopic = "company services and features"
)

// BuildPrompt maps an SEO issue category and its page context to the prompt
// sent to the model. Unknown issue ids fail with ErrUnsupportedIssue.
func BuildPrompt(issueID string, context map[string]string) (string, error) {
	switch issueID {
	case "no-h1":
		topic := contextValue(context, "topic", defaultH1Topic)
		return fmt.Sprintf("Act as an expert SEO copywriter. Generate a concise, highly engaging H1 tag (single sentence, no quotes) for a webpage about the topic: '%s'. The H1 must target strong search intent.", topic), nil

	case "title-length":
		title := contextValue(context, "title", defaultTitle)
		return fmt.Sprintf("Act as an expert SEO consultant. Shorten the following webpage title to under 60 characters for maximum SEO effectiveness and better search results display, keeping the core meaning: \"%s\"", title), nil

	case "image-alt-text":
		src := contextValue(context, "src", defaultImageSrc)
		return fmt.Sprintf("Act as an accessibility specialist. Write a brief, descriptive alt text (under 12 words, no quotes) for an image that is described as '%s'. Focus on describing the image content for screen readers and SEO.", src), nil

	case "meta-description":
		topic := contextValue(context, "topic", defaultMetaTopic)
		return fmt.Sprintf("Act as an expert marketer. Write a compelling meta description (under 160 characters, no quotes) for a webpage about '%s' to maximize click-through rates from search results. Make it action-oriented and relevant.", topic), nil

	default:
		return "", ErrUnsupportedIssue
	}
}

// contextValue falls back to the default only when the key is absent; a field
// that is present but empty is used as-is.
func contextValue(context map[string]string, key, fallback string) string {
	if v, ok := context[key]; ok {
		return v
	}
	return fallback
}
