// Package models defines the domain records held by the auth store: the
// authenticated user, the backing user document, and user preferences.
package models

// User is the identity record for the currently authenticated account.
// Avatar is the file id of the stored avatar in the user-avatars bucket,
// empty when none is set; it is populated from the user document rather
// than the account object.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// UserDocument is the wire shape of a document in the users collection.
// Preferences is nil when the document predates the preferences field.
type UserDocument struct {
	Email       string       `json:"email"`
	Name        string       `json:"name"`
	Avatar      string       `json:"avatar,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
	CreatedAt   string       `json:"createdAt,omitempty"`
	UpdatedAt   string       `json:"updatedAt,omitempty"`
}

// Snapshot is the subset of store state persisted locally and rehydrated
// at process start, pending remote re-validation.
type Snapshot struct {
	User        *User        `json:"user"`
	Preferences *Preferences `json:"preferences"`
}
