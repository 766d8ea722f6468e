package tag

type CreateTagDTO struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type UpdateTagDTO struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}
