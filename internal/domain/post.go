package domain

type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (p Post) EntityID() int {
	return p.ID
}

func (p Post) WithEntityID(id int) Post {
	p.ID = id
	return p
}

type PostRepository interface {
	FindAll() []Post
	FindByID(id int) (*Post, error)
	Save(post Post) (Post, error)
	DeleteByID(id int) error
	ExistsByID(id int) (bool, error)
	FindByUserID(userID int) ([]Post, error)
	FindByIDAndUserID(id, userID int) (*Post, error)
}

type PostService interface {
	GetPosts() ([]Post, error)
	GetPost(id int) (*Post, error)
	CreatePost(post Post) (*Post, error)
	UpdatePost(id int, post Post) error
	DeletePost(id int) error
	GetPostsByUser(userID int) ([]Post, error)
	GetPostByUser(userID, postID int) (*Post, error)
}
