package domain

import "fmt"

const (
	EntityUser = "User"
	EntityPost = "Post"
)

// NotFoundError signals that a referenced entity id does not exist.
// Entity distinguishes the user and post cases when both can occur
// on the same call path.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with the id: %d", e.Entity, e.ID)
}

// ConflictError signals a username uniqueness violation on create.
type ConflictError struct {
	Username string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("User already exists with the username: %s", e.Username)
}

func NewUserNotFound(id int) error {
	return &NotFoundError{Entity: EntityUser, ID: id}
}

func NewPostNotFound(id int) error {
	return &NotFoundError{Entity: EntityPost, ID: id}
}

func NewUserAlreadyExists(username string) error {
	return &ConflictError{Username: username}
}
