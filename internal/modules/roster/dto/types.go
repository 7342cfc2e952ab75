package dto

type UserOutput struct {
	ID          int64
	Username    string
	DisplayName string
	Role        string
	SkillLevel  string
	Goals       string
}

type CreateUserInput struct {
	Username    string
	DisplayName string
	Role        string
	SkillLevel  string
	Goals       string
}
