package sidebar

// CreateSideBarDTO creates a sidebar block. A nil IsEnable means enabled;
// a nil Sequence appends the block after the current last one.
type CreateSideBarDTO struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	Sequence *int   `json:"sequence"`
	IsEnable *bool  `json:"is_enable"`
}

type UpdateSideBarDTO struct {
	Name     *string `json:"name"`
	Content  *string `json:"content"`
	Sequence *int    `json:"sequence"`
	IsEnable *bool   `json:"is_enable"`
}
