package domain

// Slot status labels used in read views
const (
	StatusBooked    = "booked"
	StatusAvailable = "available"
)
