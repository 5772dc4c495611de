// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered account. ID, Username and Email are unique;
// ID never changes after registration.
type User struct {
	ID           int64      // Auto-increment identifier assigned by storage.
	Username     string     // Login name, also the subject of issued tokens.
	Email        string     // Contact email, unique across users.
	AvatarURL    string     // Optional profile picture.
	PasswordHash string     // bcrypt hash, never the plaintext.
	CreatedAt    time.Time  // Registration time.
	LastLogin    *time.Time // Set on every successful login; nil until the first one.
}
