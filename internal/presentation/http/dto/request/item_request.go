package request

// CreateItemRequest represents a menu item creation request
type CreateItemRequest struct {
	NameLocal  string  `json:"name_local" binding:"required,max=255"`
	NameCommon string  `json:"name_common" binding:"required,max=255"`
	Price      float64 `json:"price" binding:"min=0"`
	Category   string  `json:"category" binding:"omitempty,max=100"`
	ImageRef   *string `json:"image_ref"`
}

// UpdateItemRequest represents a menu item update request
type UpdateItemRequest struct {
	NameLocal  string  `json:"name_local" binding:"required,max=255"`
	NameCommon string  `json:"name_common" binding:"required,max=255"`
	Price      float64 `json:"price" binding:"min=0"`
	Category   string  `json:"category" binding:"omitempty,max=100"`
	ImageRef   *string `json:"image_ref"`
}

// ToggleItemRequest represents an item activation toggle request
type ToggleItemRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
