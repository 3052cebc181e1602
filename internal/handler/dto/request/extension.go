package request

type RequestExtensionRequest struct {
	Days   int    `json:"days" binding:"required,min=1"`
	Reason string `json:"reason" binding:"required"`
}

type ResolveExtensionRequest struct {
	Decision   string  `json:"decision" binding:"required,oneof=approved denied"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}
