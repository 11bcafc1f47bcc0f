// Package auth implements user registration, credential verification, session
// token issuance and session verification. Sessions are self-contained
// HS256-signed JWTs; nothing about them is persisted.
package auth
