package pathai

import "context"

// Backend performs the actual generation call against one backend variant.
// The dispatcher never talks to the network itself; it only decides which
// variant or model to try and when to retry.
type Backend interface {
	Generate(ctx context.Context, variant string, req BackendRequest) (BackendResponse, error)
}
