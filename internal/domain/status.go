package domain

type Status string

const (
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
)
