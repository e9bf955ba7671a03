package req

type CreateRoomRequest struct {
	Name           string   `json:"name" validate:"omitempty,max=100"`
	IsGroup        bool     `json:"isGroup"`
	ParticipantIDs []string `json:"participantIds" validate:"required,min=1"`
	JobID          string   `json:"jobId,omitempty"`
	ContractID     string   `json:"contractId,omitempty"`
}
