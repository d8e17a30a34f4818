// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the polls site.

# Handler Types

Each handler is a struct holding the reflected store:

  - PollsHandler: question index, detail and the results/vote placeholders
  - SchemaHandler: read-only view of the reflected schema

Handlers are created via constructor functions:

	pollsHandler := handlers.NewPollsHandler(store)

# Sessions

Every request opens its own session and closes it before returning:

	sess, err := h.store.Session(r.Context())
	if err != nil { ... }
	defer sess.Close()

Nothing is shared between requests except the pool behind the store.

# Views

	GET /               → Index (latest 5 questions, newest first)
	GET /{id}/          → Detail (404 when the question does not exist)
	GET /{id}/results/  → Results (placeholder text)
	GET /{id}/vote/     → Vote (placeholder text)

An {id} that is not a non-negative integer is treated like a missing
question.
*/
package handlers
