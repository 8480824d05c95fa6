package client

import "context"

type accessTokenKey struct{}

// WithAccessToken returns a context whose requests are authorized with
// token. An empty token yields an unauthenticated context.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFrom returns the token attached with WithAccessToken, if any.
func AccessTokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
