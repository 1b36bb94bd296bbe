// Package ident maps bearer tokens to owner identities for the API
package ident

import (
	"net/http"
	"strings"

	"atelier/internal/modkit/httpkit"
	"atelier/internal/platform/config"
	perr "atelier/internal/platform/errors"
)

// Verifier resolves static API tokens to owner ids.
// Token material lives in env only; tokens are compared verbatim
type Verifier struct {
	tokens map[string]string // token -> owner id
}

// FromConfig builds a Verifier from CORE_IDENT_TOKENS
// format: "token:ownerID[,token:ownerID...]"
func FromConfig(cfg config.Conf) *Verifier {
	raw := cfg.Prefix("CORE_IDENT_").MayString("TOKENS", "")
	return New(raw)
}

// New parses the token spec; malformed pairs are skipped
func New(spec string) *Verifier {
	v := &Verifier{tokens: map[string]string{}}
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		tok, owner, ok := strings.Cut(pair, ":")
		if !ok || tok == "" || owner == "" {
			continue
		}
		v.tokens[tok] = owner
	}
	return v
}

// Empty reports whether no tokens are configured
func (v *Verifier) Empty() bool { return len(v.tokens) == 0 }

// Parse implements middleware.AuthPort
// the owner doubles as the user id: one identity per token
func (v *Verifier) Parse(r *http.Request) (userID, ownerID string, err error) {
	raw, err := httpkit.JWT(r)
	if err != nil {
		return "", "", err
	}
	owner, ok := v.tokens[raw]
	if !ok {
		return "", "", perr.Unauthorizedf("unknown token")
	}
	return owner, owner, nil
}
