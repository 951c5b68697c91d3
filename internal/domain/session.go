package domain

import "context"

type accessTokenKey struct{}

// WithAccessToken attaches a viewer's access token to the context. The HTTP
// layer sets it from the Authorization header; session providers and remote
// sources read it back when acting on the viewer's behalf.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessToken returns the viewer's access token, if any.
func AccessToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(string)
	return token, ok && token != ""
}
