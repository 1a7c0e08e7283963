package checklist

type ChecklistItemResponse struct {
	ID           uint32 `json:"id"`
	Label        string `json:"label"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"isActive"`
	DisplayOrder int    `json:"displayOrder"`
}

type ListChecklistResponse struct {
	Items []ChecklistItemResponse `json:"items"`
}

type CreateChecklistItemRequest struct {
	Label        string `json:"label" binding:"required,min=1,max=200"`
	Description  string `json:"description" binding:"omitempty,max=500"`
	DisplayOrder int    `json:"displayOrder" binding:"gte=0"`
}

type UpdateChecklistItemRequest struct {
	Label        *string `json:"label" binding:"omitempty,min=1,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	IsActive     *bool   `json:"isActive"`
	DisplayOrder *int    `json:"displayOrder" binding:"omitempty,gte=0"`
}
