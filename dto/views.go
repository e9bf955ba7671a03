package dto

import "time"

// Typed views over domain objects owned by other modules. Business code
// fills one in at the call site instead of the dispatch layer probing the
// object for a freelancer/recipient attribute at runtime.

type ProposalView struct {
	ID             string
	JobID          string
	JobTitle       string
	ClientID       string
	FreelancerID   string
	FreelancerName string
	Amount         string
}

type ContractView struct {
	ID             string
	Title          string
	ClientID       string
	ClientName     string
	FreelancerID   string
	FreelancerName string
	Amount         string
	Deadline       *time.Time
}

// Party returns the ids of both users bound to the contract.
func (c ContractView) Party() []string {
	return []string{c.ClientID, c.FreelancerID}
}

type PaymentView struct {
	ID            string
	Amount        string
	PayerID       string
	PayerName     string
	RecipientID   string
	RecipientName string
}

type ReviewView struct {
	ID           string
	Rating       int
	Comment      string
	ReviewerID   string
	ReviewerName string
	ReviewedID   string
}
