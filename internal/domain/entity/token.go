package entity

// TokenType distinguishes the use a signed token was issued for.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

func (t TokenType) String() string {
	return string(t)
}
