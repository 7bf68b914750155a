package domain

type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u User) EntityID() int {
	return u.ID
}

func (u User) WithEntityID(id int) User {
	u.ID = id
	return u
}

type UserRepository interface {
	FindAll() []User
	FindByID(id int) (*User, error)
	Save(user User) (User, error)
	DeleteByID(id int) error
	ExistsByID(id int) (bool, error)
	ExistsByUsername(username string) (bool, error)
}

type UserService interface {
	GetUsers() ([]User, error)
	GetUser(id int) (*User, error)
	CreateUser(user User) (*User, error)
	UpdateUser(id int, user User) error
	DeleteUser(id int) error
	GetUserPosts(id int) ([]Post, error)
	GetUserPost(userID, postID int) (*Post, error)
}
