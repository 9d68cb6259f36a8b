package request

// CreatePartyRequest represents a client or supplier creation request
type CreatePartyRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=100"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
	Address *string `json:"address" binding:"omitempty,max=255"`
}

// UpdatePartyRequest represents a client or supplier update request
type UpdatePartyRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
	Address *string `json:"address" binding:"omitempty,max=255"`
}

// PartyFilterRequest represents client or supplier filter parameters
type PartyFilterRequest struct {
	Search           string `form:"search"`
	WithTransactions bool   `form:"with_transactions"`
	Page             int    `form:"page"`
	PerPage          int    `form:"per_page"`
}

// CategoryRequest represents a category create or rename request
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CategoryFilterRequest represents category filter parameters
type CategoryFilterRequest struct {
	Search       string `form:"search"`
	WithProducts bool   `form:"with_products"`
	Page         int    `form:"page"`
	PerPage      int    `form:"per_page"`
}
