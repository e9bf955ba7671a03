package enum

type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
)
