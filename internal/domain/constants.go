package domain

const (
	NameCannotBeBlank      = "Name cannot be blank"
	UsernameCannotBeBlank  = "Username cannot be blank"
	EmailCannotBeBlank     = "Email cannot be blank"
	EmailMustBeValid       = "Email must be valid"
	PostUserCannotBeBlank  = "Post user cannot be blank"
	PostTitleCannotBeBlank = "Post title cannot be blank"
	PostBodyCannotBeBlank  = "Post body cannot be blank"
)
