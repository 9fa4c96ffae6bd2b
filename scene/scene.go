// Package scene produces image URLs for narrative scenes. The only shipped
// implementation derives a deterministic placeholder URL from the prompt so
// every turn response carries a resolvable media URL even without a real
// image model; some chat clients cannot display base64 data URLs.
package scene

// Generator resolves a short scene description into an image URL.
type Generator interface {
	ImageURL(prompt string) string
}
