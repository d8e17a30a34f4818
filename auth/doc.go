// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key generation and validation.

# Admin Keys

Admin keys use HMAC-SHA256 over a scope name to create deterministic,
verifiable keys:

	adminKey := auth.GenerateAdminKey(auth.ScopeDebug, salt)
	err := auth.ValidateAdminKey(auth.ScopeDebug, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same scope and salt always produce the same key, so nothing is stored.

Print the key for an operator with:

	polls -admin-salt "$ADMIN_KEY_SALT" -print-admin-key

# Disabled Access

With an empty salt ValidateAdminKey always returns ErrAdminDisabled, and the
debug routes answer 403.
*/
package auth
