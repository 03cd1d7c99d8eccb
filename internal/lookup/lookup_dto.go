package lookup

type CreateValueRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateValueRequest struct {
	Name string `json:"name" binding:"required"`
}

type ValueResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
