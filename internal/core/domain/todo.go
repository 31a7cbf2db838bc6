package domain

import "errors"

// ErrTodoNotFound covers both an absent todo and a todo owned by another
// user: ownership mismatches are indistinguishable from absence so the API
// never confirms that someone else's resource exists.
var ErrTodoNotFound = errors.New("todo not found")

// Todo is a single task item. OwnerID references the User that created it;
// every read, update, and delete is filtered by owner.
type Todo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
	OwnerID     string `json:"owner_id"`
}
