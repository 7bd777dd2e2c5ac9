package remote

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Status describes the state of the calendar connection. The remote feed
// is only consulted when a token is present and not expired.
type Status struct {
	HasToken  bool `json:"hasToken"`
	IsExpired bool `json:"isExpired"`
}

func (s Status) Connected() bool {
	return s.HasToken && !s.IsExpired
}

// CheckToken inspects the stored integration token. Only the exp claim
// matters here, so the token is decoded without signature verification;
// the remote side authenticates it for real. A token without an exp
// claim never expires locally, an unparseable token counts as expired.
func CheckToken(token string, now time.Time) Status {
	if strings.TrimSpace(token) == "" {
		return Status{}
	}
	st := Status{HasToken: true}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		st.IsExpired = true
		return st
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return st
	}
	if !exp.After(now) {
		st.IsExpired = true
	}
	return st
}
