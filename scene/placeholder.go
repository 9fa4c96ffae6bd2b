package scene

import (
	"fmt"
	"net/url"
)

// defaultBaseURL renders a gray box with the prompt text written on it.
const defaultBaseURL = "https://via.placeholder.com/1024x1024.png"

// Placeholder is a Generator that percent-encodes the prompt into a fixed
// placeholder-service template. It performs no I/O and is a pure function of
// its input: equal prompts always yield the identical URL.
type Placeholder struct {
	baseURL string
}

// NewPlaceholder constructs a Placeholder with the default template.
func NewPlaceholder() *Placeholder {
	return &Placeholder{baseURL: defaultBaseURL}
}

// NewPlaceholderWithBaseURL constructs a Placeholder pointing at an
// alternative placeholder service.
func NewPlaceholderWithBaseURL(baseURL string) *Placeholder {
	return &Placeholder{baseURL: baseURL}
}

// ImageURL implements Generator.
func (p *Placeholder) ImageURL(prompt string) string {
	return fmt.Sprintf("%s?text=%s", p.baseURL, url.QueryEscape(prompt))
}
