package output

import "context"

// GifClient interface - Output port for the GIF lookup service
type GifClient interface {
	// RandomGifURL returns the URL of a random GIF for the configured tag.
	RandomGifURL(ctx context.Context) (string, error)
}
