// Package domain contains the core business entities of the application,
// accounts and the messages they post, together with the validation rules
// that define them. It is independent of any specific infrastructure or
// delivery mechanism.
package domain
